package blind

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestSessionSign(t *testing.T) {
	assert := assert.New(t)

	kp, err := GenerateKey(rand.Reader)
	assert.Nil(err)

	rp, bs, err := NewSession(rand.Reader)
	assert.Nil(err)
	_, err = pointFromWired(rp)
	assert.Nil(err)

	ep, br, err := NewRequestForMessage(rand.Reader, nil, kp.Public(), rp, []byte("session test"))
	assert.Nil(err)

	sp, err := bs.Sign(ep, kp.Private())
	assert.Nil(err)

	sig, err := br.Finalize(sp)
	assert.Nil(err)
	assert.True(sig.Authenticate(kp.Public()))
}

func TestSessionSignShare(t *testing.T) {
	assert := assert.New(t)

	// with a known nonce and challenge the share is xs*e' + k exactly
	kp, err := GenerateKey(rand.Reader)
	assert.Nil(err)

	rng := NewTranscriptRand("session-share-vector", []byte("nonce"))
	rp, bs, err := NewSession(rng)
	assert.Nil(err)

	k, err := randomScalar(NewTranscriptRand("session-share-vector", []byte("nonce")))
	assert.Nil(err)
	var commitment ristretto.Point
	commitment.ScalarMultBase(k)
	assert.Equal(hex.EncodeToString(commitment.Bytes()), hex.EncodeToString(rp[:]))

	var ep [32]byte
	ep[0] = 7
	sp, err := bs.Sign(ep, kp.Private())
	assert.Nil(err)

	e, err := scalarFromWired(ep)
	assert.Nil(err)
	var want ristretto.Scalar
	want.Mul(kp.Private(), e)
	want.Add(&want, k)
	assert.Equal(hex.EncodeToString(want.Bytes()), hex.EncodeToString(sp[:]))
}

func TestSessionConsumed(t *testing.T) {
	assert := assert.New(t)

	kp, err := GenerateKey(rand.Reader)
	assert.Nil(err)

	_, bs, err := NewSession(rand.Reader)
	assert.Nil(err)

	var ep [32]byte
	ep[0] = 1
	_, err = bs.Sign(ep, kp.Private())
	assert.Nil(err)

	_, err = bs.Sign(ep, kp.Private())
	assert.Equal(ErrSessionConsumed, err)
}

func TestSessionMalformedChallenge(t *testing.T) {
	assert := assert.New(t)

	kp, err := GenerateKey(rand.Reader)
	assert.Nil(err)

	_, bs, err := NewSession(rand.Reader)
	assert.Nil(err)

	_, err = bs.Sign(groupOrder, kp.Private())
	assert.Equal(ErrScalarMalformed, err)
}

func TestSessionRngFailure(t *testing.T) {
	assert := assert.New(t)

	_, _, err := NewSession(brokenReader{})
	assert.Equal(ErrRngUnavailable, err)
}
