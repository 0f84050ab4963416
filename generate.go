package tnid

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// GenerateV0 returns a time-ordered TNID stamped with the current wall
// clock and 64 bits of crypto/rand entropy.
func GenerateV0(name Name) TNID {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fallback: time-based entropy (degraded but functional)
		binary.BigEndian.PutUint64(b[:], uint64(time.Now().UnixNano()))
	}
	return NewV0(name, uint64(time.Now().UnixMilli()), binary.BigEndian.Uint64(b[:]))
}

// GenerateV1 returns a high-entropy TNID filled from crypto/rand.
func GenerateV1(name Name) TNID {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fallback: time-based entropy (degraded but functional)
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], uint64(time.Now().UnixMilli()))
	}
	return NewV1(name, b)
}
