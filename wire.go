package blind

import "encoding/hex"

// WiredUnblindedSignature is the 96 byte wire form of a signature triple:
// e at [0,32), s at [32,64) and R at [64,96), each in its canonical
// per-field encoding.
type WiredUnblindedSignature [96]byte

// Wire encodes the triple. Encoding a valid in-memory signature cannot fail.
func (sig *UnblindedSignature) Wire() *WiredUnblindedSignature {
	var w WiredUnblindedSignature
	e := wiredScalar(sig.E)
	s := wiredScalar(sig.S)
	r := wiredPoint(sig.R)
	copy(w[0:32], e[:])
	copy(w[32:64], s[:])
	copy(w[64:96], r[:])
	return &w
}

// Signature decodes the triple all-or-nothing: a malformed scalar or point
// segment fails the whole decode.
func (w *WiredUnblindedSignature) Signature() (*UnblindedSignature, error) {
	var eArr, sArr, rArr [32]byte
	copy(eArr[:], w[0:32])
	copy(sArr[:], w[32:64])
	copy(rArr[:], w[64:96])

	e, err := scalarFromWired(eArr)
	if err != nil {
		return nil, err
	}
	s, err := scalarFromWired(sArr)
	if err != nil {
		return nil, err
	}
	r, err := pointFromWired(rArr)
	if err != nil {
		return nil, err
	}
	return NewUnblindedSignature(e, s, r), nil
}

func (w *WiredUnblindedSignature) Bytes() []byte {
	return w[:]
}

func (w *WiredUnblindedSignature) String() string {
	return hex.EncodeToString(w[:])
}
