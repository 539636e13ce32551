package keypair

import (
	"crypto/rand"
	"io"
)

// MaxDrawAttempts bounds how many out-of-range draws are discarded before
// giving up.
const MaxDrawAttempts int = 8

// NewPrivateKey draws a uniformly random scalar from r; nil r means
// crypto/rand.
func NewPrivateKey(r io.Reader) (PrivateKey, error) {
	if r == nil {
		r = rand.Reader
	}

	b := make([]byte, PrivateKeyLength)
	defer func() {
		for i := range b {
			b[i] = 0
		}
	}()

	for i := 0; i < MaxDrawAttempts; i++ {
		if n, err := io.ReadFull(r, b); err != nil {
			return PrivateKey{}, InsufficientEntropyError.AppendMessage("read=%d: %v", n, err)
		}

		pk, err := NewPrivateKeyFromBytes(b)
		if err == nil {
			return pk, nil
		}

		log.Debug("random scalar out of range; retry", "attempt", i+1)
	}

	return PrivateKey{}, InsufficientEntropyError.AppendMessage("no valid scalar after %d draws", MaxDrawAttempts)
}
