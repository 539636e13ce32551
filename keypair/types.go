package keypair

import (
	"encoding/binary"
	"encoding/json"
	"strings"
)

var (
	ECDSAType   Type = NewType(1, "ecdsa")
	SchnorrType Type = NewType(2, "schnorr")
)

// Type is the signature scheme, which decides how the public key is
// serialized.
type Type struct {
	id   uint
	name string
}

func NewType(id uint, name string) Type {
	return Type{id: id, name: name}
}

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ECDSAType.Name():
		return ECDSAType, nil
	case SchnorrType.Name():
		return SchnorrType, nil
	default:
		return Type{}, UnknownKeyTypeError.AppendMessage("type=%q", s)
	}
}

func (k Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k Type) ID() uint {
	return k.id
}

func (k Type) Name() string {
	return k.name
}

func (k Type) Equal(b Type) bool {
	return k.id == b.id
}

func (k Type) MarshalBinary() ([]byte, error) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(k.id))

	return b, nil
}

func (k Type) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Type) UnmarshalText(b []byte) error {
	t, err := ParseType(string(b))
	if err != nil {
		return err
	}

	*k = t

	return nil
}

func (k Type) Empty() bool {
	return k.id < 1
}

func (k Type) String() string {
	return k.name
}
