package network

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	NetworkErrorCode
	BalanceQueryErrorCode
	InvalidEndpointErrorCode
)

var (
	NetworkError         common.Error = common.NewError("network", NetworkErrorCode, "network error")
	BalanceQueryError    common.Error = common.NewError("network", BalanceQueryErrorCode, "balance query failed")
	InvalidEndpointError common.Error = common.NewError("network", InvalidEndpointErrorCode, "invalid endpoint")
)
