package blind

import "errors"

var (
	// ErrRngUnavailable is returned when the secure random source could not
	// provide the bytes needed to sample a key, nonce or blinding factor.
	ErrRngUnavailable = errors.New("blind: failed to read from the random source")

	// ErrScalarMalformed is returned when 32 wired bytes are not the
	// canonical encoding of a scalar below the group order.
	ErrScalarMalformed = errors.New("blind: wired scalar is not canonical")

	// ErrPointMalformed is returned when 32 wired bytes do not decompress
	// to a valid ristretto point.
	ErrPointMalformed = errors.New("blind: wired point does not decompress")

	// ErrSessionConsumed is returned when a single-use session or request
	// is asked to sign or finalize a second time.
	ErrSessionConsumed = errors.New("blind: session already consumed")
)
