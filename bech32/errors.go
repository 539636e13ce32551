package bech32

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	InvalidInputWidthErrorCode
	InvalidPaddingErrorCode
	InvalidCharacterErrorCode
	MixedCaseErrorCode
	MalformedAddressErrorCode
	ChecksumMismatchErrorCode
	InvalidSchemeErrorCode
)

var (
	InvalidInputWidthError common.Error = common.NewError("bech32", InvalidInputWidthErrorCode, "invalid input width")
	InvalidPaddingError    common.Error = common.NewError("bech32", InvalidPaddingErrorCode, "invalid padding")
	InvalidCharacterError  common.Error = common.NewError("bech32", InvalidCharacterErrorCode, "invalid character")
	MixedCaseError         common.Error = common.NewError("bech32", MixedCaseErrorCode, "mixed case")
	MalformedAddressError  common.Error = common.NewError("bech32", MalformedAddressErrorCode, "malformed address")
	ChecksumMismatchError  common.Error = common.NewError("bech32", ChecksumMismatchErrorCode, "checksum mismatch")
	InvalidSchemeError     common.Error = common.NewError("bech32", InvalidSchemeErrorCode, "invalid scheme")
)
