package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough for log lines
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeValuesHash fingerprints an ordered integer array. The length is
// mixed in so that a prefix never collides with the full array.
func ComputeValuesHash(values []int32) Hash {
	buf := make([]byte, 8+4*len(values))
	binary.BigEndian.PutUint64(buf, uint64(len(values)))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[8+4*i:], uint32(v))
	}
	return NewHash(buf)
}
