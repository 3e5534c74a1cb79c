package delivery

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// TLS policy names accepted by SMTPConfig.
const (
	TLSNone          = "none"
	TLSOpportunistic = "opportunistic"
	TLSMandatory     = "mandatory"
)

// SMTPConfig addresses an SMTP relay.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	TLSPolicy string
	Timeout   time.Duration
}

// SMTPTransport delivers messages over SMTP. A client is built per send so
// concurrent deliveries share no connection state.
type SMTPTransport struct {
	cfg  SMTPConfig
	opts []mail.Option
}

// NewSMTPTransport validates cfg and prepares client options.
func NewSMTPTransport(cfg SMTPConfig) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	policy, err := tlsPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return &SMTPTransport{cfg: cfg, opts: opts}, nil
}

// Send builds the MIME message and hands it to the relay.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(t.cfg.Host, t.opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending via %s: %w", t.cfg.Host, err)
	}
	return nil
}

func buildMsg(msg *Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	if len(msg.Attachment) > 0 {
		err := m.AttachReader(msg.AttachmentName, bytes.NewReader(msg.Attachment),
			mail.WithFileContentType(mail.ContentType(AttachmentContentType)))
		if err != nil {
			return nil, fmt.Errorf("attaching report: %w", err)
		}
	}
	return m, nil
}

func tlsPolicy(name string) (mail.TLSPolicy, error) {
	switch name {
	case "", TLSNone:
		return mail.NoTLS, nil
	case TLSOpportunistic:
		return mail.TLSOpportunistic, nil
	case TLSMandatory:
		return mail.TLSMandatory, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown tls policy %q", name)
	}
}

var _ Transport = (*SMTPTransport)(nil)
