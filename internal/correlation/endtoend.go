// Package correlation maps internal identifiers onto the end-to-end
// reference strings carried on payment instructions. The bank wire format
// forbids the dash separators of the canonical UUID form, so outbound ids
// are sent as 32 hex characters and re-formed on the way back. The encoding
// is pure and reversible; no side lookup table is needed to correlate a
// confirmation with its originating request.
package correlation

import (
	"strings"

	"github.com/google/uuid"
)

const externalIDLength = 32

// ToExternalID renders id as 32 lowercase hex characters.
func ToExternalID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}

// ToInternalID re-forms an internal identifier from an end-to-end reference.
// The second return value is false unless s is exactly 32 hex characters
// that make a valid UUID with separators re-inserted at 8/12/16/20.
func ToInternalID(s string) (uuid.UUID, bool) {
	if len(s) != externalIDLength {
		return uuid.Nil, false
	}
	canonical := s[0:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:32]
	id, err := uuid.Parse(canonical)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
