package blind

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptRand(t *testing.T) {
	assert := assert.New(t)

	tr := NewTranscriptRand("transcript-rand", []byte("seed"))
	var a, b [64]byte
	_, err := io.ReadFull(tr, a[:])
	assert.Nil(err)
	_, err = io.ReadFull(tr, b[:])
	assert.Nil(err)
	// the PRF stream moves forward between reads
	assert.NotEqual(hex.EncodeToString(a[:]), hex.EncodeToString(b[:]))

	tr2 := NewTranscriptRand("transcript-rand", []byte("seed"))
	var c [64]byte
	_, err = io.ReadFull(tr2, c[:])
	assert.Nil(err)
	assert.Equal(hex.EncodeToString(a[:]), hex.EncodeToString(c[:]))

	tr3 := NewTranscriptRand("transcript-rand", []byte("another seed"))
	var d [64]byte
	_, err = io.ReadFull(tr3, d[:])
	assert.Nil(err)
	assert.NotEqual(hex.EncodeToString(a[:]), hex.EncodeToString(d[:]))
}
