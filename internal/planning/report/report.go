// Package report composes the client-facing retirement summary document.
//
// The body is built as markdown, rendered to HTML, wrapped in a page shell and
// handed to a Converter that produces the final document file.
package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"

	"retireplan/internal/planning/models"
	dErrors "retireplan/pkg/domain-errors"
)

// Title heads every report.
const Title = "Retirement Planning Summary"

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = money.AUD

// DefaultSymbol is shown in front of amounts. go-money's own grapheme for AUD
// is "A$", while clients read balances as "$1,234.56".
const DefaultSymbol = "$"

// maxMinorUnits bounds amounts that can be displayed to the cent.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Converter turns an HTML page into a document file at path.
type Converter interface {
	Convert(ctx context.Context, html string, path string) error
}

// Data is everything a report shows about one client.
type Data struct {
	Name      string
	Age       int
	Result    *models.ProjectionResult
	ChartPath string
}

// Composer builds reports. It is stateless between calls and safe for
// concurrent use.
type Composer struct {
	converter Converter
	currency  string
	symbol    string
	timeout   time.Duration
}

// Option configures a Composer.
type Option func(*Composer)

// WithCurrency sets the ISO 4217 code used to display balances.
func WithCurrency(code string) Option {
	return func(c *Composer) {
		c.currency = code
	}
}

// WithSymbol sets the symbol displayed in front of amounts.
func WithSymbol(symbol string) Option {
	return func(c *Composer) {
		c.symbol = symbol
	}
}

// WithTimeout bounds a single conversion. Zero means no extra bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) {
		c.timeout = d
	}
}

// New creates a Composer backed by converter.
func New(converter Converter, opts ...Option) (*Composer, error) {
	if converter == nil {
		return nil, fmt.Errorf("converter is required")
	}
	c := &Composer{converter: converter, currency: DefaultCurrency, symbol: DefaultSymbol}
	for _, opt := range opts {
		opt(c)
	}
	if money.GetCurrency(c.currency) == nil {
		return nil, fmt.Errorf("unknown currency %q", c.currency)
	}
	return c, nil
}

// Compose reads the chart once, lays out the summary and writes the document
// to path.
func (c *Composer) Compose(ctx context.Context, data Data, path string) error {
	if data.Result == nil {
		return dErrors.New(dErrors.CodeRender, "projection result is required")
	}
	if _, err := c.FormatMoney(data.Result.FinalBalance); err != nil {
		return err
	}
	chart, err := os.ReadFile(data.ChartPath)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "failed to read chart image")
	}

	page, err := c.HTML(data, chart)
	if err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.converter.Convert(ctx, page, path); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "failed to convert report")
	}
	return nil
}

// Markdown returns the report body as markdown. chartURI is the image source.
func (c *Composer) Markdown(data Data, chartURI string) (string, error) {
	balance, err := c.FormatMoney(data.Result.FinalBalance)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	field := func(label, value string) {
		doc.PlainText(md.Bold(label+":") + " " + value)
		doc.PlainText("")
	}

	doc.H1(Title)
	field("Name", escapeMarkdown(data.Name))
	field("Current Age", strconv.Itoa(data.Age))
	field("Years Until Retirement", strconv.Itoa(data.Result.YearsUntilRetirement))
	field("Projected Super Balance", balance)
	field("Real Growth Rate", FormatPercent(data.Result.RealGrowthRate))
	doc.H2("Projection Chart")
	doc.PlainText(fmt.Sprintf("![Projection chart](%s)", chartURI))

	return doc.String(), nil
}

// HTML renders the full page with the chart embedded inline.
func (c *Composer) HTML(data Data, chart []byte) (string, error) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(chart)

	markup, err := c.Markdown(data, uri)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := goldmark.New().Convert([]byte(markup), &body); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeRender, "failed to render report markup")
	}

	var out bytes.Buffer
	err = pageShell.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: Title,
		Body:  template.HTML(body.String()), //nolint:gosec // goldmark output, raw HTML disabled
	})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeRender, "failed to render report page")
	}
	return out.String(), nil
}

// FormatMoney displays an amount in the composer's currency, e.g. $1,234.56.
// Amounts that are not finite or do not fit in int64 minor units are a
// RenderError.
func (c *Composer) FormatMoney(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", dErrors.New(dErrors.CodeRender, "amount is not a finite number")
	}
	cur := money.GetCurrency(c.currency)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return "", dErrors.New(dErrors.CodeRender, "amount is too large to display")
	}
	f := money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, c.symbol, "$1")
	return f.Format(minor.IntPart()), nil
}

// FormatPercent displays a rate as a percentage with two decimals.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`[`, `\[`, `]`, `\]`, `<`, `\<`, `>`, `\>`,
	`#`, `\#`, `!`, `\!`, `|`, `\|`, `~`, `\~`,
)

// escapeMarkdown keeps client text literal in the rendered page.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var pageShell = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; }
img { width: 600px; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
