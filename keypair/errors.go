package keypair

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	InvalidScalarErrorCode
	InsufficientEntropyErrorCode
	InvalidPublicKeyErrorCode
	UnknownKeyTypeErrorCode
	InvalidExtendedKeyErrorCode
	InvalidDerivationPathErrorCode
)

var (
	InvalidScalarError         common.Error = common.NewError("keypair", InvalidScalarErrorCode, "invalid scalar")
	InsufficientEntropyError   common.Error = common.NewError("keypair", InsufficientEntropyErrorCode, "insufficient entropy")
	InvalidPublicKeyError      common.Error = common.NewError("keypair", InvalidPublicKeyErrorCode, "invalid public key")
	UnknownKeyTypeError        common.Error = common.NewError("keypair", UnknownKeyTypeErrorCode, "unknown key type")
	InvalidExtendedKeyError    common.Error = common.NewError("keypair", InvalidExtendedKeyErrorCode, "invalid extended key")
	InvalidDerivationPathError common.Error = common.NewError("keypair", InvalidDerivationPathErrorCode, "invalid derivation path")
)
