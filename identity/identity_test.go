package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRecordKey_Deterministic(t *testing.T) {
	first := DeriveRecordKey("test-uuid-1")
	second := DeriveRecordKey("test-uuid-1")
	assert.Equal(t, first, second, "same token must yield the same key")

	other := DeriveRecordKey("test-uuid-2")
	assert.NotEqual(t, first, other, "different tokens must yield different keys")
}

func TestDeriveRecordKey_EmptyToken(t *testing.T) {
	// keccak256 of the empty string, the well-known constant.
	key := DeriveRecordKey("")
	require.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", key.String())
}

func TestDeriveHolderHash_NameNormalization(t *testing.T) {
	reference := DeriveHolderHash("123", "JANE DOE", "SALT")

	tests := []struct {
		name     string
		fullName string
		same     bool
	}{
		{"identical", "JANE DOE", true},
		{"lowercase", "jane doe", true},
		{"mixed case", "Jane Doe", true},
		{"surrounding whitespace", "  JANE DOE\t", true},
		{"lowercase with whitespace", " jane doe ", true},
		{"inner whitespace differs", "JANE  DOE", false},
		{"different name", "JANE ROE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveHolderHash("123", tt.fullName, "SALT")
			if tt.same {
				assert.Equal(t, reference, got)
			} else {
				assert.NotEqual(t, reference, got)
			}
		})
	}
}

func TestDeriveHolderHash_SensitiveToAllOtherInputs(t *testing.T) {
	reference := DeriveHolderHash("123", "JANE DOE", "SALT")

	assert.NotEqual(t, reference, DeriveHolderHash("124", "JANE DOE", "SALT"))
	assert.NotEqual(t, reference, DeriveHolderHash("123", "JANE DOE", "PEPPER"))
}

func TestDeriveHolderHash_MatchesDelimitedPreimage(t *testing.T) {
	// The holder hash is the record-key digest of the delimited preimage;
	// issuing clients in other languages rely on this exact layout.
	hash := DeriveHolderHash("123", " jane doe ", "SALT")
	key := DeriveRecordKey("123|JANE DOE|SALT")
	assert.Equal(t, key.Bytes(), hash[:])
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "JANE DOE", NormalizeName("  jane doe "))
	assert.Equal(t, "", NormalizeName("   "))
}
