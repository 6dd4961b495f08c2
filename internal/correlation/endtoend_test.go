package correlation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToExternalID(t *testing.T) {
	id := uuid.MustParse("74236b22-65a9-4c9d-babb-7e3b41b27a16")

	ext := ToExternalID(id)

	assert.Equal(t, "74236b2265a94c9dbabb7e3b41b27a16", ext)
	assert.Len(t, ext, 32)
	assert.NotContains(t, ext, "-")
}

func TestToInternalID_RoundTrip(t *testing.T) {
	id := uuid.New()

	got, ok := ToInternalID(ToExternalID(id))

	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestToInternalID_WrongLength(t *testing.T) {
	_, ok := ToInternalID("74236b2265a94c9d")
	assert.False(t, ok)

	_, ok = ToInternalID(strings.Repeat("a", 33))
	assert.False(t, ok)

	_, ok = ToInternalID("")
	assert.False(t, ok)
}

func TestToInternalID_NotHex(t *testing.T) {
	_, ok := ToInternalID(strings.Repeat("z", 32))
	assert.False(t, ok)
}

func TestToInternalID_BankAssignedReference(t *testing.T) {
	// Banks put their own references in EndToEndId on inbound transfers;
	// those must never be mistaken for internal ids.
	_, ok := ToInternalID("NOTPROVIDED")
	assert.False(t, ok)
}
