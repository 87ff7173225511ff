package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// EvidenceBundle is a verifiable reference for one extracted value. Every
// number that feeds a check carries one of these so the final report can be
// audited against the literal filing text.
type EvidenceBundle struct {
	RowID        string   `json:"row_id"`
	DocID        string   `json:"doc_id"`
	SectionTitle string   `json:"section_title"`
	Locator      string   `json:"locator"` // page number or parsing path
	ExactSnippet string   `json:"exact_snippet"`
	SnippetHash  string   `json:"snippet_hash"`
	ValueParsed  *float64 `json:"value_parsed"`
	Units        string   `json:"units"`
}

// NewEvidenceBundle creates an evidence bundle and computes the snippet hash.
// A bundle with no snippet has no hash. Bundles are never mutated after
// creation.
func NewEvidenceBundle(rowID, docID, sectionTitle, locator, snippet string, value *float64, units string) *EvidenceBundle {
	b := &EvidenceBundle{
		RowID:        rowID,
		DocID:        docID,
		SectionTitle: sectionTitle,
		Locator:      locator,
		ExactSnippet: snippet,
		ValueParsed:  value,
		Units:        units,
	}
	if b.DocID == "" {
		b.DocID = "unknown"
	}
	if b.SectionTitle == "" {
		b.SectionTitle = "unknown"
	}
	if b.Locator == "" {
		b.Locator = "unknown"
	}
	if b.ExactSnippet != "" {
		b.SnippetHash = HashSnippet(b.ExactSnippet)
	}
	return b
}

// HashSnippet returns the deterministic content hash of a snippet.
func HashSnippet(snippet string) string {
	sum := sha256.Sum256([]byte(snippet))
	return hex.EncodeToString(sum[:])
}

// EvidenceLedger is an append-only, creation-ordered collection of every
// evidence bundle produced during one analysis run.
type EvidenceLedger struct {
	entries []*EvidenceBundle
}

// NewEvidenceLedger creates an empty ledger.
func NewEvidenceLedger() *EvidenceLedger {
	return &EvidenceLedger{}
}

// Append adds an entry to the ledger. Entries preserve insertion order.
func (l *EvidenceLedger) Append(entry *EvidenceBundle) {
	if entry == nil {
		return
	}
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the ledger entries in insertion order.
func (l *EvidenceLedger) Entries() []*EvidenceBundle {
	out := make([]*EvidenceBundle, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of ledger entries.
func (l *EvidenceLedger) Len() int {
	return len(l.entries)
}

// JSON serializes the ledger to an indented JSON array of bundle records.
func (l *EvidenceLedger) JSON() (string, error) {
	entries := l.entries
	if entries == nil {
		entries = []*EvidenceBundle{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
