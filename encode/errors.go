package encode

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	EncoderAlreadyRegisteredErrorCode
	EncoderNotRegisteredErrorCode
	EncodeFailedErrorCode
	DecodeFailedErrorCode
)

var (
	EncoderAlreadyRegisteredError common.Error = common.NewError(
		"encode",
		EncoderAlreadyRegisteredErrorCode,
		"encoder is already registered",
	)
	EncoderNotRegisteredError common.Error = common.NewError(
		"encode",
		EncoderNotRegisteredErrorCode,
		"encoder is not registered",
	)
	EncodeFailedError common.Error = common.NewError("encode", EncodeFailedErrorCode, "failed to encode")
	DecodeFailedError common.Error = common.NewError("encode", DecodeFailedErrorCode, "failed to decode")
)
