package common

import (
	"strings"

	"github.com/google/uuid"
)

// NewDocumentID generates a unique document ID with the "doc_" prefix
// Format: doc_<uuid>
func NewDocumentID() string {
	return "doc_" + uuid.New().String()
}

// NewEvidenceRowID generates a short opaque identifier for an evidence row.
// Format: first 8 hex characters of a uuid, no prefix.
func NewEvidenceRowID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
