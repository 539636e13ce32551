package config

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	InvalidConfigErrorCode
)

var InvalidConfigError common.Error = common.NewError("config", InvalidConfigErrorCode, "invalid config")
