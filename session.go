package blind

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// BlindSession is the signer side of one protocol run. It holds the secret
// nonce k behind the commitment R' handed to the requester, and it signs
// exactly one blinded challenge: a nonce signing two challenges leaks the
// private key.
type BlindSession struct {
	k        ristretto.Scalar
	consumed bool
}

// NewSession samples a nonce k and returns the wired commitment R' = k*G
// together with the session that will sign the requester's challenge.
func NewSession(rng io.Reader) ([32]byte, *BlindSession, error) {
	k, err := randomScalar(rng)
	if err != nil {
		return [32]byte{}, nil, err
	}
	var rp ristretto.Point
	rp.ScalarMultBase(k)

	bs := &BlindSession{k: *k}
	return wiredPoint(&rp), bs, nil
}

// Sign consumes the session and returns the wired signature share
// s' = xs*e' + k over the requester's blinded challenge e'. A second call
// returns ErrSessionConsumed.
func (bs *BlindSession) Sign(ep [32]byte, xs *ristretto.Scalar) ([32]byte, error) {
	if bs.consumed {
		return [32]byte{}, ErrSessionConsumed
	}
	e, err := scalarFromWired(ep)
	if err != nil {
		return [32]byte{}, err
	}

	var sp ristretto.Scalar
	sp.Mul(xs, e)
	sp.Add(&sp, &bs.k)

	bs.consumed = true
	bs.k.SetZero()
	return wiredScalar(&sp), nil
}
