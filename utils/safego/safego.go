package safego

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/fireant-io/tap-fireant/logger"
)

// Recovery logs a recovered panic with its stack trace. With exit set the
// process terminates non-zero, matching the run-fatal contract.
func Recovery(exit bool) {
	if err := recover(); err != nil {
		logger.Error(err)
		for _, str := range strings.Split(string(debug.Stack()), "\n") {
			logger.Error(strings.ReplaceAll(str, "\t", ""))
		}
		if exit {
			os.Exit(1)
		}
	}
}
