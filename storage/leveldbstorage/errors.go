package leveldbstorage

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	LevelDBErrorCode
	DBNotClosedErrorCode
	DBClosedErrorCode
	WrongBatchErrorCode
)

var (
	LevelDBError     common.Error = common.NewError("leveldb", LevelDBErrorCode, "leveldb error")
	DBNotClosedError common.Error = common.NewError("leveldb", DBNotClosedErrorCode, "db not closed")
	DBClosedError    common.Error = common.NewError("leveldb", DBClosedErrorCode, "db closed")
	WrongBatchError  common.Error = common.NewError("leveldb", WrongBatchErrorCode, "wrong batch")
)
