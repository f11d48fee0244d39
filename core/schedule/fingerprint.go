package schedule

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Digest is the canonical content fingerprint of a Schedule. It is a pure
// function of the machine-to-queue mapping: equal schedules always produce
// equal digests. The encoding is content-stable across process runs and
// architectures, so digests may be persisted for cross-run deduplication.
// Collisions between unequal schedules are cryptographically unlikely but
// callers using digests as map keys should re-check equality on insert.
type Digest [sha256.Size]byte

// String returns the hex form of the digest.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Fingerprint computes the canonical digest of the schedule. The hash covers
// the machine count, each queue length and each order id, varint-encoded so
// that queue boundaries are unambiguous ([[1 2][3]] and [[1][2 3]] differ).
func (s *Schedule) Fingerprint() Digest {
	buf := make([]byte, 0, 2*(s.orders+len(s.queues)+1))
	var tmp [binary.MaxVarintLen64]byte
	put := func(v int) {
		n := binary.PutUvarint(tmp[:], uint64(v))
		buf = append(buf, tmp[:n]...)
	}
	put(len(s.queues))
	for _, q := range s.queues {
		put(len(q))
		for _, id := range q {
			put(id)
		}
	}
	return sha256.Sum256(buf)
}
