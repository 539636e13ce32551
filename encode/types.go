package encode

import (
	"encoding/binary"
	"encoding/json"
	"strings"
)

var (
	RLPEncoderType  EncoderType = NewEncoderType(1, "rlp")
	JSONEncoderType EncoderType = NewEncoderType(2, "json")
)

type EncoderType struct {
	id   uint
	name string
}

func NewEncoderType(id uint, name string) EncoderType {
	return EncoderType{id: id, name: name}
}

func ParseEncoderType(s string) (EncoderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case RLPEncoderType.String():
		return RLPEncoderType, nil
	case JSONEncoderType.String():
		return JSONEncoderType, nil
	default:
		return EncoderType{}, EncoderNotRegisteredError.AppendMessage("type=%q", s)
	}
}

func (h EncoderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h EncoderType) ID() uint {
	return h.id
}

func (h EncoderType) Equal(b EncoderType) bool {
	return h.id == b.id
}

func (h EncoderType) MarshalBinary() ([]byte, error) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(h.id))

	return b, nil
}

func (h *EncoderType) UnmarshalBinary(b []byte) error {
	if len(b) != 4 {
		return DecodeFailedError.AppendMessage("invalid encoder type length; length=%d", len(b))
	}

	h.id = uint(binary.LittleEndian.Uint32(b))

	return nil
}

func (h EncoderType) Empty() bool {
	return h.id < 1
}

func (h EncoderType) String() string {
	return h.name
}
