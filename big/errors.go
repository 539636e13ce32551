package big

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	InvalidAmountErrorCode
)

var InvalidAmountError common.Error = common.NewError("big", InvalidAmountErrorCode, "invalid amount")
