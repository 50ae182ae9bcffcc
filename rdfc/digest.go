package rdfc

import (
	"crypto/sha512"
	"encoding/hex"

	sha256simd "github.com/minio/sha256-simd"
)

// HashAlgorithm selects the digest used for first-degree and N-degree
// hashing. Both options are sound and complete on their own. Canonical
// labels are issued in ascending hash order, so the two can label the same
// dataset differently whenever it has more than one blank node.
type HashAlgorithm int

const (
	// SHA256 selects SHA-256, the RDFC-1.0 default.
	SHA256 HashAlgorithm = iota
	// SHA384 selects SHA-384.
	SHA384
)

// digest is an opaque byte-in/hex-out hash function. hash.go and driver.go
// only ever see this type, never a concrete hash package, so the digest
// backend can be swapped (as it is for SHA-256 below) without touching the
// algorithm itself.
type digest func(data []byte) string

// newDigest resolves a HashAlgorithm to a digest function.
//
// SHA-256 is backed by minio/sha256-simd rather than the standard library's
// crypto/sha256: it is a drop-in, API-compatible replacement (same
// New()/Sum256() surface) that uses hardware acceleration where available,
// and it is a dependency already present in the retrieved corpus
// (iden3-go-schema-processor). SHA-384 has no accelerated equivalent
// anywhere in the corpus, so it stays on the standard library's
// crypto/sha512 (sha512.Sum384 produces a 384-bit digest).
func newDigest(algo HashAlgorithm) digest {
	switch algo {
	case SHA384:
		return func(data []byte) string {
			sum := sha512.Sum384(data)
			return hex.EncodeToString(sum[:])
		}
	default:
		return func(data []byte) string {
			sum := sha256simd.Sum256(data)
			return hex.EncodeToString(sum[:])
		}
	}
}
