package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `env:"RETIREPLAN_ADDR" envDefault:":8080"`
	Environment    string        `env:"RETIREPLAN_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`

	Mail       Mail
	Artifacts  Artifacts
	Render     Render
	Projection Projection
}

// Mail configures the SMTP transport used by the delivery dispatcher.
// Defaults mirror a local relay on port 25 without TLS or auth.
type Mail struct {
	Host             string        `env:"SMTP_HOST" envDefault:"localhost"`
	Port             int           `env:"SMTP_PORT" envDefault:"25"`
	Username         string        `env:"SMTP_USERNAME"`
	Password         string        `env:"SMTP_PASSWORD"`
	From             string        `env:"SMTP_FROM" envDefault:"noreply@yourdomain.com"`
	TLSPolicy        string        `env:"SMTP_TLS_POLICY" envDefault:"none"`
	Timeout          time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	BreakerThreshold int           `env:"SMTP_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown  time.Duration `env:"SMTP_BREAKER_COOLDOWN" envDefault:"30s"`
}

// Artifacts configures ephemeral storage for charts and reports.
type Artifacts struct {
	// Dir is the base directory; empty means os.TempDir()/retireplan.
	Dir string `env:"ARTIFACT_DIR"`
	// RetainReports keeps the PDF after dispatch for audit instead of deleting it.
	RetainReports bool `env:"ARTIFACT_RETAIN_REPORTS" envDefault:"false"`
}

// Render configures the chart and document backends.
type Render struct {
	WkhtmltopdfPath string        `env:"WKHTMLTOPDF_PATH"`
	DocumentTimeout time.Duration `env:"RENDER_DOCUMENT_TIMEOUT" envDefault:"30s"`
	ChartTimeout    time.Duration `env:"RENDER_CHART_TIMEOUT" envDefault:"10s"`
	Currency        string        `env:"REPORT_CURRENCY" envDefault:"AUD"`
	CurrencySymbol  string        `env:"REPORT_CURRENCY_SYMBOL" envDefault:"$"`
}

// Projection holds the default market assumptions.
type Projection struct {
	GrowthRate    float64 `env:"PROJECTION_GROWTH_RATE" envDefault:"0.06"`
	InflationRate float64 `env:"PROJECTION_INFLATION_RATE" envDefault:"0.025"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (c Server) validate() error {
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", c.Mail.Port)
	}
	switch c.Mail.TLSPolicy {
	case "none", "opportunistic", "mandatory":
	default:
		return fmt.Errorf("SMTP_TLS_POLICY must be one of none, opportunistic, mandatory: %q", c.Mail.TLSPolicy)
	}
	if c.Projection.InflationRate <= -1 {
		return fmt.Errorf("PROJECTION_INFLATION_RATE must be greater than -1")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}
