package blind

import (
	"encoding/hex"
	"hash"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Order of the ristretto group, little endian.
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// challengeScalar derives e = H(R || msg) reduced mod the group order. The
// digest must produce 64 bytes.
func challengeScalar(h func() hash.Hash, r *ristretto.Point, msg []byte) *ristretto.Scalar {
	hs := h()
	if hs.Size() != 64 {
		panic("blind: challenge digest must have 512-bit output")
	}
	hs.Write(r.Bytes())
	hs.Write(msg)
	var key [64]byte
	copy(key[:], hs.Sum(nil))

	var e ristretto.Scalar
	return e.SetReduced(&key)
}

// randomScalar samples a scalar from 64 uniform bytes of the provided source.
func randomScalar(rng io.Reader) (*ristretto.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return nil, ErrRngUnavailable
	}
	var s ristretto.Scalar
	return s.SetReduced(&buf), nil
}

// scalarIsCanonical reports whether buf encodes a scalar below the group
// order. go-ristretto does not reject out-of-range input on SetBytes, so
// wired scalars are checked here first.
func scalarIsCanonical(buf *[32]byte) bool {
	for i := 31; i >= 0; i-- {
		if buf[i] < groupOrder[i] {
			return true
		}
		if buf[i] > groupOrder[i] {
			return false
		}
	}
	return false
}

func scalarFromWired(buf [32]byte) (*ristretto.Scalar, error) {
	if !scalarIsCanonical(&buf) {
		return nil, ErrScalarMalformed
	}
	var s ristretto.Scalar
	return s.SetBytes(&buf), nil
}

func pointFromWired(buf [32]byte) (*ristretto.Point, error) {
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, ErrPointMalformed
	}
	return &p, nil
}

func wiredScalar(s *ristretto.Scalar) [32]byte {
	var buf [32]byte
	copy(buf[:], s.Bytes())
	return buf
}

func wiredPoint(p *ristretto.Point) [32]byte {
	var buf [32]byte
	copy(buf[:], p.Bytes())
	return buf
}

func hexToScalar(h string) *ristretto.Scalar {
	buf, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	var s ristretto.Scalar
	return s.SetBytes(&buf32)
}

func hexToPoint(h string) *ristretto.Point {
	buf, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	var p ristretto.Point
	p.SetBytes(&buf32)
	return &p
}
