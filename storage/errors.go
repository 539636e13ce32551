package storage

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	RecordNotFoundErrorCode
	RecordAlreadyExistsErrorCode
	IncompatibleRecordErrorCode
	InvalidRecordErrorCode
)

var (
	RecordNotFoundError      common.Error = common.NewError("storage", RecordNotFoundErrorCode, "record not found")
	RecordAlreadyExistsError common.Error = common.NewError("storage", RecordAlreadyExistsErrorCode, "record already exists")
	IncompatibleRecordError  common.Error = common.NewError("storage", IncompatibleRecordErrorCode, "incompatible record")
	InvalidRecordError       common.Error = common.NewError("storage", InvalidRecordErrorCode, "invalid record")
)
