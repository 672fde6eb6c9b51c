package certutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyID is the SHA-256 digest of a certificate's DER encoding, rendered as
// 64 lowercase hex characters.
type KeyID string

// String returns the full 64-character digest.
func (k KeyID) String() string { return string(k) }

// Short returns the 16-character short form of the key id.
func (k KeyID) Short() string { return string(k[:16]) }

// ComputeKeyID hashes DER bytes into a KeyID.
func ComputeKeyID(der []byte) KeyID {
	sum := sha256.Sum256(der)
	return KeyID(hex.EncodeToString(sum[:]))
}
