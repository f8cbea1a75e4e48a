package tapfireant

import (
	"os"

	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/protocol"
	"github.com/fireant-io/tap-fireant/utils/safego"
)

// RegisterDriver hands the driver to the protocol commands and runs the CLI.
func RegisterDriver(driver protocol.Driver) {
	defer safego.Recovery(true)

	err := protocol.CreateRootCommand(driver).Execute()
	if err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}
