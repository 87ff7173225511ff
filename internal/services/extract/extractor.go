// Package extract locates numeric metrics in filing text by keyword
// proximity and wraps each hit in an auditable evidence bundle.
//
// The extractor is deliberately simple: no table understanding, no unit
// reconciliation. A metric is the first currency-like number following a
// keyword, searched in synonym-priority order.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/models"
)

// numberPattern matches a currency-like numeric token after a keyword:
// optional dollar sign, comma-grouped digits, optional decimals.
const numberPattern = `[:\s]+.*?(\$?\d{1,3}(?:,\d{3})*(?:\.\d+)?)`

var valueCleaner = strings.NewReplacer("$", "", ",", "")

// Extractor extracts metrics from one parsed document.
type Extractor struct {
	doc   *models.ParsedDocument
	rules *RuleSet
}

// NewExtractor creates an extractor over a parsed document using the
// embedded metric vocabulary.
func NewExtractor(doc *models.ParsedDocument) *Extractor {
	return &Extractor{doc: doc, rules: DefaultRules()}
}

// Text returns the full document text, for checks that need raw keyword
// presence rather than a numeric metric.
func (e *Extractor) Text() string {
	return e.doc.FullText
}

// Metric extracts the named metric. When no synonyms are passed, the
// vocabulary entry for the canonical name supplies them. Synonym priority
// order wins over document position; within one synonym the first occurrence
// wins. Returns nil when no synonym matches a parseable number.
func (e *Extractor) Metric(name string, synonyms ...string) *models.EvidenceBundle {
	units := "USD"
	if len(synonyms) == 0 {
		rule, ok := e.rules.Find(name)
		if !ok {
			return nil
		}
		synonyms = rule.Synonyms
		if rule.Units != "" {
			units = rule.Units
		}
	}

	for _, keyword := range synonyms {
		if bundle := e.search(keyword, units); bundle != nil {
			return bundle
		}
	}
	return nil
}

// search finds the first number following the keyword and builds its
// evidence bundle. The snippet is the original-case text around the match.
func (e *Extractor) search(keyword, units string) *models.EvidenceBundle {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(strings.ToLower(keyword)) + numberPattern)
	if err != nil {
		return nil
	}

	match := pattern.FindStringSubmatchIndex(e.doc.FullText)
	if match == nil {
		return nil
	}

	value, err := strconv.ParseFloat(valueCleaner.Replace(e.doc.FullText[match[2]:match[3]]), 64)
	if err != nil {
		return nil
	}

	snippet := e.doc.Snippet(match[0]-50, match[1]+50)
	locator := fmt.Sprintf("offset:%d", match[0])

	return models.NewEvidenceBundle(
		common.NewEvidenceRowID(),
		e.doc.DocID,
		"Extracted via keywords",
		locator,
		snippet,
		&value,
		units,
	)
}
