// Package textfmt formats numbers and strings for chart labels and tooltips.
package textfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated labels.
const Ellipsis = "..."

// Formatter renders numbers with the grouping and decimal conventions of a
// locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter creates a formatter for tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

// Full renders v with thousands grouping. Integral values have no decimals,
// others keep two.
func (f Formatter) Full(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return f.p.Sprintf("%d", int64(v))
	}
	return f.p.Sprintf("%.2f", v)
}

// Fixed renders v with a fixed number of decimals.
func (f Formatter) Fixed(v float64, decimals int) string {
	return f.p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Compact renders v as 1.2K / 3.4M when large, Full otherwise.
func (f Formatter) Compact(v float64) string {
	switch a := math.Abs(v); {
	case a >= 1e6:
		return f.p.Sprintf("%.1fM", v/1e6)
	case a >= 1e3:
		return f.p.Sprintf("%.1fK", v/1e3)
	}
	return f.Full(v)
}

// Percent renders a percentage with one decimal.
func (f Formatter) Percent(v float64) string {
	return f.p.Sprintf("%.1f%%", v)
}

// Truncate shortens s to at most budget characters and appends Ellipsis when
// anything was cut. Characters are counted after NFC normalisation so
// composed and decomposed accents count the same.
func Truncate(s string, budget int) string {
	s = norm.NFC.String(s)
	if budget <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= budget {
		return s
	}
	return string(r[:budget]) + Ellipsis
}

var lower = cases.Lower(language.Und)

// Slug turns a chart title into a file stem: whitespace runs become a single
// underscore, path separators are replaced and the result is lowercased.
func Slug(title string) string {
	fields := strings.FieldsFunc(title, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '\\'
	})
	return lower.String(strings.Join(fields, "_"))
}
