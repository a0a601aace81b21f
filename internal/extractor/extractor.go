// Package extractor scans raw statement text pasted from the investment
// platform and yields the (name, value) pairs it recognizes.
//
// This is a best-effort heuristic parser by design: the input is tab- and
// newline-delimited with no declared schema, and exactly two line-group
// layouts are recognized. Unrecognized input yields zero items rather than
// an error, and lines whose value fails to parse are silently dropped —
// statement noise is expected.
package extractor

import (
	"regexp"
	"strings"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/numparse"
)

// DefaultMaxItems bounds collection against malformed or huge pastes.
const DefaultMaxItems = 10

// layout is one recognized statement line-group format. Both layouts end in
// the same tab-separated final value followed by the platform's localized
// "resgatar" / "aplicar" action labels; their distinct delimiter sequences
// keep a line block from being counted by both in the same scan.
type layout struct {
	name    string
	pattern *regexp.Regexp
	capture func(match []string) (name, rawValue string)
}

// captureNameValue maps the common two-group capture shape.
func captureNameValue(match []string) (string, string) {
	return strings.TrimSpace(match[1]), strings.TrimSpace(match[2])
}

var layouts = []layout{
	{
		// Name line, a currency-formatted first value, four lines of
		// percentage/currency noise, then the final value and action labels:
		//
		//	Itaú Dunamis Fundo de Ações	R$ 1.315,20
		//	4,08%	R$ 22.670,37
		//	...
		//	39,66%	1.456.151,66	resgatar	aplicar
		name:    "funds",
		pattern: regexp.MustCompile(`(?m)^([\wáàãâêéíïóôõúç ]+)\tR\$ [0-9.,]+\n.*\n.*\n.*\n.*\n.*\n.*\t([0-9.,]+)\tresgatar\taplicar.*$`),
		capture: captureNameValue,
	},
	{
		// Name line (hyphens allowed) followed by five "no value" placeholder
		// groups and the same tail:
		//
		//	CDB-DI
		//	-
		//	Nenhum valor
		//	...
		//	Nenhum valor	15.420,09	resgatar	aplicar
		name:    "fixed-income",
		pattern: regexp.MustCompile(`(?m)^([\wáàãâêéíïóôõúç\- ]+)\t\n-\nNenhum valor\t\n-\nNenhum valor\t\n-\nNenhum valor\t\n-\nNenhum valor\t\n-\nNenhum valor\t([0-9.,]+)\tresgatar\taplicar.*$`),
		capture: captureNameValue,
	},
}

// Extractor recognizes investment line items in pasted statement text.
type Extractor struct {
	parser   *numparse.Parser
	logger   logging.Logger
	maxItems int
}

// New creates an Extractor using the given locale-aware numeric parser.
func New(parser *numparse.Parser, logger logging.Logger) *Extractor {
	return &Extractor{
		parser:   parser,
		logger:   logger,
		maxItems: DefaultMaxItems,
	}
}

// WithMaxItems overrides the collection cap. Values below one restore the
// default.
func (e *Extractor) WithMaxItems(n int) *Extractor {
	if n < 1 {
		n = DefaultMaxItems
	}
	e.maxItems = n
	return e
}

// Extract scans the raw text with every layout and returns the recognized
// items, at most maxItems of them. A value that fails to parse, or parses
// to zero, drops its line without failing the scan.
func (e *Extractor) Extract(raw string) []models.InvestmentItem {
	items := make([]models.InvestmentItem, 0, e.maxItems)

	for _, l := range layouts {
		for _, match := range l.pattern.FindAllStringSubmatch(raw, -1) {
			if len(items) >= e.maxItems {
				e.logger.Warn("Statement item cap reached, ignoring the rest",
					logging.Field{Key: logging.FieldCount, Value: e.maxItems})
				return items
			}

			name, rawValue := l.capture(match)
			value, ok := e.parser.Parse(rawValue)
			if !ok || value.IsZero() {
				e.logger.Debug("Dropping statement line with unusable value",
					logging.Field{Key: logging.FieldItem, Value: name},
					logging.Field{Key: logging.FieldValue, Value: rawValue})
				continue
			}

			items = append(items, models.InvestmentItem{Name: name, Value: value})
		}
	}

	e.logger.Info("Extracted statement items",
		logging.Field{Key: logging.FieldCount, Value: len(items)})
	return items
}
