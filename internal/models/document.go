package models

import (
	"time"
	"unicode/utf8"
)

// Filing represents a stored regulatory filing for a ticker.
// PRIMARY CONTENT FORMAT: normalized plain text (ContentText field); a
// markdown projection is kept alongside for presentation surfaces.
type Filing struct {
	// Identity
	ID     string `json:"id"`     // doc_{uuid}
	Ticker string `json:"ticker"` // Bare ticker code (e.g. "XOM")
	Type   string `json:"type"`   // Filing type: "10-K", "10-Q"

	// Content
	Title           string `json:"title"`
	ContentText     string `json:"content_text"`     // HTML stripped, entities decoded, whitespace collapsed
	ContentMarkdown string `json:"content_markdown"` // Markdown projection of the source HTML
	SourceURL       string `json:"source_url"`

	// Sync tracking
	LastSynced *time.Time `json:"last_synced,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is a titled region of a parsed filing.
type Section struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	StartIdx int    `json:"start_idx"`
	EndIdx   int    `json:"end_idx"`
}

// ParsedDocument is the plain-text projection of one filing. It is produced
// once per run and treated as read-only input by every check.
type ParsedDocument struct {
	DocID    string             `json:"doc_id"`
	FullText string             `json:"full_text"`
	Sections map[string]Section `json:"sections,omitempty"`
	Tables   []string           `json:"tables,omitempty"`
}

// Snippet returns the text window [start,end) clamped to document bounds.
// Window edges are widened to rune boundaries so the snippet is valid UTF-8.
func (d *ParsedDocument) Snippet(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.FullText) {
		end = len(d.FullText)
	}
	if start >= end {
		return ""
	}
	for start > 0 && !utf8.RuneStart(d.FullText[start]) {
		start--
	}
	for end < len(d.FullText) && !utf8.RuneStart(d.FullText[end]) {
		end++
	}
	return d.FullText[start:end]
}

// DocumentRef identifies one available filing without its content.
type DocumentRef struct {
	DocID string `json:"doc_id"`
	Type  string `json:"type"`
}
