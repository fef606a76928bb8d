// Package identity derives the two fixed-size opaque identifiers the registry
// is addressed by: the record key computed from a human-assigned token, and
// the holder-binding hash computed from holder attributes plus a
// deployment-wide salt.
//
// Both derivations are pure keccak256 digests, byte-compatible with the
// on-chain contract and with ethers.js (ethers.id) on the client side. Any
// string input, including the empty string, is valid and yields a
// deterministic output. Uniqueness of record keys is not checked here; that
// is the registry's responsibility.
package identity

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certledger/cert-registry-backend/interfaces"
)

// holderHashDelimiter joins holder ID, normalized name and salt before
// hashing. It must match the delimiter the issuing and verifying clients use.
const holderHashDelimiter = "|"

// DeriveRecordKey computes the certificate ID for a token as
// keccak256(utf8(token)).
func DeriveRecordKey(token string) interfaces.CertificateID {
	return interfaces.CertificateID(crypto.Keccak256Hash([]byte(token)))
}

// DeriveHolderHash computes the holder-binding hash for a holder. The full
// name is normalized (uppercased, surrounding whitespace trimmed) so that
// case and padding differences in user input do not change the binding; any
// other character difference does.
//
// The salt is a shared secret-like constant known to issuer and verifier. It
// is a deployment-wide parameter, not a per-certificate secret.
func DeriveHolderHash(holderID, fullName, salt string) interfaces.HolderHash {
	preimage := holderID + holderHashDelimiter + NormalizeName(fullName) + holderHashDelimiter + salt
	return interfaces.HolderHash(crypto.Keccak256Hash([]byte(preimage)))
}

// NormalizeName applies the holder-name normalization used by
// DeriveHolderHash: uppercase, leading and trailing whitespace removed.
func NormalizeName(fullName string) string {
	return strings.ToUpper(strings.TrimSpace(fullName))
}
