package address

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	UnknownVersionErrorCode
	UnknownNetworkErrorCode
)

var (
	UnknownVersionError common.Error = common.NewError("address", UnknownVersionErrorCode, "unknown version")
	UnknownNetworkError common.Error = common.NewError("address", UnknownNetworkErrorCode, "unknown network")
)
