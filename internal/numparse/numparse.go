// Package numparse converts locale-formatted numeric strings into decimal
// values. Separator roles are detected from the active locale rather than
// assumed, so "1.234,56" and "1,234.56" both parse correctly under their
// respective locales.
package numparse

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// referenceValue is formatted through the locale to observe which runes the
// locale uses for grouping and for the decimal point.
const referenceValue = 12345.67

// Parser parses numeric strings under a fixed locale.
type Parser struct {
	group   rune
	decimal rune
}

// New builds a Parser for the given BCP 47 locale tag ("pt-BR", "en-US", ...).
// Unknown or empty tags fall back to '.' decimal / ',' group.
func New(locale string) *Parser {
	p := &Parser{group: ',', decimal: '.'}

	tag, err := language.Parse(locale)
	if err != nil {
		return p
	}

	group, dec, ok := detectSeparators(tag)
	if ok {
		p.group = group
		p.decimal = dec
	}
	return p
}

// detectSeparators formats the reference value through the locale and
// inspects which non-digit runes appear in which roles. For 12345.67 the
// first non-digit rune is the group separator and the last is the decimal
// separator.
func detectSeparators(tag language.Tag) (group, dec rune, ok bool) {
	printer := message.NewPrinter(tag)
	formatted := printer.Sprintf("%v", number.Decimal(referenceValue))

	var nonDigits []rune
	for _, r := range formatted {
		if r < '0' || r > '9' {
			nonDigits = append(nonDigits, r)
		}
	}

	// Some locales render digits outside ASCII; give up and fall back.
	if len(nonDigits) < 2 || len(formatted) != len(nonDigits)+7 {
		return 0, 0, false
	}

	return nonDigits[0], nonDigits[len(nonDigits)-1], true
}

// Parse converts a locale-formatted numeric string into a decimal value.
// The boolean is false when the input carries no numeric value (empty
// string, separators only, garbage); that is a recoverable miss, not an
// error.
func (p *Parser) Parse(value string) (decimal.Decimal, bool) {
	sanitized := p.sanitize(value)

	// Group separators are removed in full before the decimal separator is
	// replaced, so "1.234" (grouped, no decimal part) still parses.
	normalized := strings.ReplaceAll(sanitized, string(p.group), "")
	normalized = strings.Replace(normalized, string(p.decimal), ".", 1)

	parsed, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return parsed, true
}

// sanitize strips every rune that is not a digit, one of the detected
// separators, or a leading minus sign.
func (p *Parser) sanitize(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == p.group || r == p.decimal:
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
