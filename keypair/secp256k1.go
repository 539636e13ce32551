package keypair

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// checkScalar accepts only 32 bytes encoding an integer in [1, n-1].
func checkScalar(b []byte) error {
	if len(b) != PrivateKeyLength {
		return InvalidScalarError.AppendMessage("length=%d", len(b))
	}

	var s secp256k1.ModNScalar
	defer s.Zero()

	if overflow := s.SetByteSlice(b); overflow {
		return InvalidScalarError.AppendMessage("not less than the curve order")
	}

	if s.IsZero() {
		return InvalidScalarError.AppendMessage("zero")
	}

	return nil
}

// Derive computes the public key of p. ECDSA keys are the 33 byte compressed
// point, schnorr keys the 32 byte x-only point.
func Derive(p PrivateKey, t Type) (PublicKey, error) {
	if p.IsEmpty() {
		return PublicKey{}, InvalidScalarError.AppendMessage("empty private key")
	}

	priv, pub := btcec.PrivKeyFromBytes(p.b[:])
	defer priv.Zero()

	return publicKeyOf(pub, t)
}

func publicKeyOf(pub *btcec.PublicKey, t Type) (PublicKey, error) {
	switch {
	case t.Equal(ECDSAType):
		return PublicKey{t: ECDSAType, b: pub.SerializeCompressed()}, nil
	case t.Equal(SchnorrType):
		return PublicKey{t: SchnorrType, b: schnorr.SerializePubKey(pub)}, nil
	default:
		return PublicKey{}, UnknownKeyTypeError.AppendMessage("type=%q", t.String())
	}
}

func DerivePublicKey(b []byte, t Type) (PublicKey, error) {
	p, err := NewPrivateKeyFromBytes(b)
	if err != nil {
		return PublicKey{}, err
	}

	return Derive(p, t)
}

// NewPublicKeyFromBytes parses a serialized public key; the length decides
// the type. The point must be on the curve.
func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	switch len(b) {
	case CompressedKeyLength:
		pub, err := btcec.ParsePubKey(b)
		if err != nil {
			return PublicKey{}, InvalidPublicKeyError.Wrap(err)
		}

		return PublicKey{t: ECDSAType, b: pub.SerializeCompressed()}, nil
	case XOnlyPublicKeyLength:
		pub, err := schnorr.ParsePubKey(b)
		if err != nil {
			return PublicKey{}, InvalidPublicKeyError.Wrap(err)
		}

		return PublicKey{t: SchnorrType, b: schnorr.SerializePubKey(pub)}, nil
	default:
		return PublicKey{}, InvalidPublicKeyError.AppendMessage("length=%d", len(b))
	}
}
