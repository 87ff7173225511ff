package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/strata/internal/models"
)

func testDoc(text string) *models.ParsedDocument {
	return &models.ParsedDocument{DocID: "doc_test", FullText: text}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.NotEmpty(t, rules.Metrics)

	rule, ok := rules.Find("production_boe")
	require.True(t, ok)
	assert.Equal(t, []string{"total production", "average daily production", "production"}, rule.Synonyms)
	assert.Equal(t, "BOE", rule.Units)

	_, ok = rules.Find("not_a_metric")
	assert.False(t, ok)
}

func TestMetricFromVocabulary(t *testing.T) {
	doc := testDoc("For fiscal 2024, Lease Operating Expense of $800,000,000 was incurred across all basins.")
	ex := NewExtractor(doc)

	bundle := ex.Metric("lease_operating_expense")
	require.NotNil(t, bundle)
	require.NotNil(t, bundle.ValueParsed)
	assert.Equal(t, 800000000.0, *bundle.ValueParsed)
	assert.Equal(t, "doc_test", bundle.DocID)
	assert.Equal(t, "Extracted via keywords", bundle.SectionTitle)
	assert.Equal(t, "USD", bundle.Units)
	assert.Contains(t, bundle.ExactSnippet, "Lease Operating Expense of $800,000,000")
	assert.NotEmpty(t, bundle.SnippetHash)
	assert.NotEmpty(t, bundle.RowID)
}

func TestSynonymPriorityBeatsPosition(t *testing.T) {
	// "production expense" appears first in the document, but the
	// higher-priority synonym "lease operating expense" must win.
	doc := testDoc("Production expense was 500 this year. Later, lease operating expense was 300 in total.")
	ex := NewExtractor(doc)

	bundle := ex.Metric("lease_operating_expense")
	require.NotNil(t, bundle)
	assert.Equal(t, 300.0, *bundle.ValueParsed)
}

func TestFirstOccurrenceWinsWithinSynonym(t *testing.T) {
	doc := testDoc("Interest expense of 120 was recorded. Interest expense of 999 is projected.")
	ex := NewExtractor(doc)

	bundle := ex.Metric("interest_expense")
	require.NotNil(t, bundle)
	assert.Equal(t, 120.0, *bundle.ValueParsed)
}

func TestExplicitSynonymsOverrideVocabulary(t *testing.T) {
	doc := testDoc("Lifting costs were 42 per barrel. Lease operating expense was 900.")
	ex := NewExtractor(doc)

	bundle := ex.Metric("Custom Metric", "lifting costs")
	require.NotNil(t, bundle)
	assert.Equal(t, 42.0, *bundle.ValueParsed)
}

func TestMetricAbsent(t *testing.T) {
	doc := testDoc("This filing discusses retail grocery operations with no relevant figures.")
	ex := NewExtractor(doc)

	assert.Nil(t, ex.Metric("smog"))
	assert.Nil(t, ex.Metric("unregistered_name"))
}

func TestValueParsing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"comma grouped", "total debt: $1,234,000,000 outstanding", 1234000000},
		{"decimal", "total debt of 1.5 billion", 1.5},
		{"plain", "total debt was 750 at year end", 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := NewExtractor(testDoc(tt.text)).Metric("total_debt")
			require.NotNil(t, bundle)
			assert.Equal(t, tt.want, *bundle.ValueParsed)
		})
	}
}
