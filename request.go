package blind

import (
	"hash"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

// Hashed as the message when a request binds no message of its own. Runs
// made this way cannot be authenticated with the message variants later.
const ANONYMOUS_MESSAGE_DOMAIN_TAG = "ecc_blind_anonymous_message"

// BlindRequest is the requester side of one protocol run. From the signer's
// commitment R' it derives the blinded challenge e' = e + b, and it unblinds
// exactly one signature share.
//
// The unblinding keeps the algebra of the signer share intact:
//
//	s' = xs*(e+b) + k
//	s  = s' + a
//	s*G = e*Q + (R' + a*G + b*Q) = e*Q + R
//
// so the blinding factors a and b cancel without the signer ever seeing e,
// R or the message.
type BlindRequest struct {
	a        ristretto.Scalar
	e        ristretto.Scalar
	r        ristretto.Point
	msg      []byte
	consumed bool
}

// NewRequest blinds the signer commitment rp without binding a message; the
// protocol placeholder is hashed in its place. The digest constructor h must
// produce 512-bit output; nil selects blake2b-512.
func NewRequest(rng io.Reader, h func() hash.Hash, pub *ristretto.Point, rp [32]byte) ([32]byte, *BlindRequest, error) {
	return NewRequestForMessage(rng, h, pub, rp, []byte(ANONYMOUS_MESSAGE_DOMAIN_TAG))
}

// NewRequestForMessage blinds the signer commitment rp into the wired
// challenge e' for msg, and returns the request that will unblind the
// signer's share.
//
//	R  = R' + a*G + b*Q
//	e  = H(R || msg) mod l
//	e' = e + b
func NewRequestForMessage(rng io.Reader, h func() hash.Hash, pub *ristretto.Point, rp [32]byte, msg []byte) ([32]byte, *BlindRequest, error) {
	if h == nil {
		h = blake2b.New512
	}
	rpPoint, err := pointFromWired(rp)
	if err != nil {
		return [32]byte{}, nil, err
	}
	a, err := randomScalar(rng)
	if err != nil {
		return [32]byte{}, nil, err
	}
	b, err := randomScalar(rng)
	if err != nil {
		return [32]byte{}, nil, err
	}

	var aG, bQ, r ristretto.Point
	aG.ScalarMultBase(a)
	bQ.ScalarMult(pub, b)
	r.Add(rpPoint, &aG)
	r.Add(&r, &bQ)

	e := challengeScalar(h, &r, msg)

	var ep ristretto.Scalar
	ep.Add(e, b)

	br := &BlindRequest{a: *a, e: *e, r: r, msg: append([]byte(nil), msg...)}
	return wiredScalar(&ep), br, nil
}

// Finalize consumes the request and unblinds the wired signer share into the
// final signature triple {e, s = s' + a, R}. A second call returns
// ErrSessionConsumed.
func (br *BlindRequest) Finalize(sp [32]byte) (*UnblindedSignature, error) {
	if br.consumed {
		return nil, ErrSessionConsumed
	}
	share, err := scalarFromWired(sp)
	if err != nil {
		return nil, err
	}

	var s ristretto.Scalar
	s.Add(share, &br.a)
	e := br.e
	r := br.r

	br.consumed = true
	br.a.SetZero()
	return NewUnblindedSignature(&e, &s, &r), nil
}

// Message returns the message bound by this request, or the protocol
// placeholder when none was given.
func (br *BlindRequest) Message() []byte {
	return br.msg
}
