package blind

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// BlindKeypair is the signer's long term keypair. The private scalar creates
// blind signatures over blinded challenges, the public point authenticates
// the unblinded result.
type BlindKeypair struct {
	private *ristretto.Scalar
	public  *ristretto.Point
}

// GenerateKey samples a private scalar from rng and derives the public key
// as private * basepoint. Fails only when rng cannot provide enough bytes.
func GenerateKey(rng io.Reader) (*BlindKeypair, error) {
	private, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	var public ristretto.Point
	public.ScalarMultBase(private)
	return &BlindKeypair{private: private, public: &public}, nil
}

// KeypairFromWired rebuilds a keypair from the wired forms of both
// components. The components are parsed independently; the discrete-log
// relation between them is not re-checked.
func KeypairFromWired(private, public [32]byte) (*BlindKeypair, error) {
	priv, err := scalarFromWired(private)
	if err != nil {
		return nil, err
	}
	pub, err := pointFromWired(public)
	if err != nil {
		return nil, err
	}
	return &BlindKeypair{private: priv, public: pub}, nil
}

func (kp *BlindKeypair) Private() *ristretto.Scalar {
	return kp.private
}

func (kp *BlindKeypair) Public() *ristretto.Point {
	return kp.public
}

func (kp *BlindKeypair) PrivateWired() [32]byte {
	return wiredScalar(kp.private)
}

func (kp *BlindKeypair) PublicWired() [32]byte {
	return wiredPoint(kp.public)
}
