package encode

import (
	"github.com/spikeekips/kaspaddr/common"
)

type JSON struct {
}

func (j JSON) Type() EncoderType {
	return JSONEncoderType
}

func (j JSON) Encode(i interface{}) ([]byte, error) {
	encoded, err := common.EncodeJSON(i, false, false)
	if err != nil {
		return nil, EncodeFailedError.Wrap(err)
	}

	return frame(JSONEncoderType, encoded), nil
}

func (j JSON) Decode(b []byte, i interface{}) error {
	e, err := unframe(JSONEncoderType, b)
	if err != nil {
		return err
	}

	if err := common.DecodeJSON(e, i); err != nil {
		return DecodeFailedError.Wrap(err)
	}

	return nil
}
