package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers with the separators of a locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter parses a BCP 47 locale such as "pt-BR" or "en-US"
func NewFormatter(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return FormatterFor(tag), nil
}

// FormatterFor builds a Formatter for an already parsed tag
func FormatterFor(tag language.Tag) Formatter {
	return Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the locale of the formatter
func (f Formatter) Tag() language.Tag {
	return f.tag
}

// Number formats v with the given number of decimals
func (f Formatter) Number(v float64, decimals int) string {
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Fixed re-renders a plain two-decimal string ("8.60") in the locale.
// Strings that are not numbers are returned unchanged.
func (f Formatter) Fixed(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return f.Number(d.InexactFloat64(), 2)
}

// Gauge formats a conductor section with one decimal, e.g. "6,0 mm²"
func (f Formatter) Gauge(g float64) string {
	return f.Number(g, 1) + " mm²"
}

// Date formats t as day/month/year for Portuguese, ISO otherwise
func (f Formatter) Date(t time.Time) string {
	if base, _ := f.tag.Base(); base.String() == "pt" {
		return t.Format("02/01/2006")
	}
	return t.Format("2006-01-02")
}
