package keypair

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	PrivateKeyLength       int = 32
	CompressedKeyLength    int = 33
	XOnlyPublicKeyLength   int = 32
	privateKeyRedactedText     = "PrivateKey(<redacted>)"
)

// PrivateKey is a secp256k1 scalar in [1, n-1]. Formatting never shows
// the scalar; use Bytes for the raw value.
type PrivateKey struct {
	b [PrivateKeyLength]byte
}

func NewPrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if err := checkScalar(b); err != nil {
		return PrivateKey{}, err
	}

	var pk PrivateKey
	copy(pk.b[:], b)

	return pk, nil
}

func (p PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeyLength)
	copy(b, p.b[:])

	return b
}

func (p PrivateKey) IsEmpty() bool {
	var zero [PrivateKeyLength]byte
	return subtle.ConstantTimeCompare(p.b[:], zero[:]) == 1
}

func (p PrivateKey) Equal(b PrivateKey) bool {
	return subtle.ConstantTimeCompare(p.b[:], b.b[:]) == 1
}

func (p PrivateKey) PublicKey(t Type) (PublicKey, error) {
	return Derive(p, t)
}

func (p PrivateKey) String() string {
	return privateKeyRedactedText
}

func (p PrivateKey) GoString() string {
	return privateKeyRedactedText
}

// Format keeps every verb, including %x and %v, redacted.
func (p PrivateKey) Format(s fmt.State, _ rune) {
	_, _ = s.Write([]byte(privateKeyRedactedText))
}

func (p PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKeyRedactedText), nil
}

type PublicKey struct {
	t Type
	b []byte
}

func (p PublicKey) Type() Type {
	return p.t
}

func (p PublicKey) Bytes() []byte {
	b := make([]byte, len(p.b))
	copy(b, p.b)

	return b
}

func (p PublicKey) Len() int {
	return len(p.b)
}

func (p PublicKey) IsEmpty() bool {
	return p.t.Empty() || len(p.b) < 1
}

func (p PublicKey) IsValid() error {
	switch {
	case p.t.Equal(ECDSAType):
		if len(p.b) != CompressedKeyLength {
			return InvalidPublicKeyError.AppendMessage("ecdsa key length=%d", len(p.b))
		}
	case p.t.Equal(SchnorrType):
		if len(p.b) != XOnlyPublicKeyLength {
			return InvalidPublicKeyError.AppendMessage("schnorr key length=%d", len(p.b))
		}
	default:
		return UnknownKeyTypeError.AppendMessage("type=%q", p.t.String())
	}

	return nil
}

func (p PublicKey) Equal(b PublicKey) bool {
	if !p.t.Equal(b.t) {
		return false
	}

	return subtle.ConstantTimeCompare(p.b, b.b) == 1
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p.b)
}

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
