package blind

import (
	"github.com/gtank/merlin"
)

// TranscriptRand is a deterministic random source backed by a merlin
// transcript. Every generating operation in this package takes its
// randomness as an io.Reader, and a TranscriptRand seeded with a fixed label
// and seed replays the same keys, nonces and blinding factors on every run.
// It is meant for reproducible test vectors, never for production keys.
type TranscriptRand struct {
	t *merlin.Transcript
}

func NewTranscriptRand(label string, seed []byte) *TranscriptRand {
	t := merlin.NewTranscript(label)
	appendBytes([]byte("seed"), seed, t)
	return &TranscriptRand{t: t}
}

// Read fills buf from the transcript PRF. It never fails.
func (tr *TranscriptRand) Read(buf []byte) (int, error) {
	data := tr.t.ExtractBytes([]byte("rand"), len(buf))
	copy(buf, data)
	return len(buf), nil
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}
