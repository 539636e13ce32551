package common

import (
	"github.com/inconshreveable/log15"
)

func SetTestLogger(logger log15.Logger) {
	InTest = true

	handler, _ := LogHandler(LogFormatter("json"), "")
	logger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, handler))
}
