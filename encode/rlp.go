package encode

import (
	"github.com/ethereum/go-ethereum/rlp"
)

type RLP struct {
}

func (r RLP) Type() EncoderType {
	return RLPEncoderType
}

func (r RLP) Encode(i interface{}) ([]byte, error) {
	encoded, err := rlp.EncodeToBytes(i)
	if err != nil {
		return nil, EncodeFailedError.Wrap(err)
	}

	return frame(RLPEncoderType, encoded), nil
}

func (r RLP) Decode(b []byte, i interface{}) error {
	e, err := unframe(RLPEncoderType, b)
	if err != nil {
		return err
	}

	if err := rlp.DecodeBytes(e, i); err != nil {
		return DecodeFailedError.Wrap(err)
	}

	return nil
}
