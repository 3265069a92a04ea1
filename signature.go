package blind

import (
	"bytes"
	"crypto/subtle"
	"hash"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

// UnblindedSignature is the artifact of protocol completion: the unblinded
// challenge e = H(R || msg), the unblinded signature s and the unblinded
// commitment R. The message itself is not carried; only e ties the triple to
// it.
type UnblindedSignature struct {
	E *ristretto.Scalar
	S *ristretto.Scalar
	R *ristretto.Point
}

func NewUnblindedSignature(e, s *ristretto.Scalar, r *ristretto.Point) *UnblindedSignature {
	return &UnblindedSignature{E: e, S: s, R: r}
}

func (sig *UnblindedSignature) sides(e *ristretto.Scalar, pub *ristretto.Point) (lhs, rhs [32]byte) {
	var l, rq, r ristretto.Point
	l.ScalarMultBase(sig.S)
	rq.ScalarMult(pub, e)
	r.Add(&rq, sig.R)
	return wiredPoint(&l), wiredPoint(&r)
}

// Authenticate checks s*G == e*Q + R against the signer public key. The
// comparison is not constant time; neither side of the equation holds a
// secret. It proves only that the triple is self consistent under pub, not
// that e corresponds to any particular message.
func (sig *UnblindedSignature) Authenticate(pub *ristretto.Point) bool {
	lhs, rhs := sig.sides(sig.E, pub)
	return bytes.Equal(lhs[:], rhs[:])
}

// ConstAuthenticate is Authenticate with a constant time comparison.
func (sig *UnblindedSignature) ConstAuthenticate(pub *ristretto.Point) bool {
	lhs, rhs := sig.sides(sig.E, pub)
	return subtle.ConstantTimeCompare(lhs[:], rhs[:]) == 1
}

// MessageAuthenticate ignores the stored e and recomputes it as
// H(R || msg), binding the check to the actual message content. The stored e
// is not guaranteed to match H(R || msg) for the provided msg. The digest
// constructor must match the one the request was built with; nil selects
// blake2b-512.
func (sig *UnblindedSignature) MessageAuthenticate(pub *ristretto.Point, h func() hash.Hash, msg []byte) bool {
	if h == nil {
		h = blake2b.New512
	}
	lhs, rhs := sig.sides(challengeScalar(h, sig.R, msg), pub)
	return bytes.Equal(lhs[:], rhs[:])
}

// MessageConstAuthenticate is MessageAuthenticate with a constant time
// comparison.
func (sig *UnblindedSignature) MessageConstAuthenticate(pub *ristretto.Point, h func() hash.Hash, msg []byte) bool {
	if h == nil {
		h = blake2b.New512
	}
	lhs, rhs := sig.sides(challengeScalar(h, sig.R, msg), pub)
	return subtle.ConstantTimeCompare(lhs[:], rhs[:]) == 1
}
