//go:build !windows

package signal

import (
	"os"
	"syscall"
)

// InterruptSignals contains the signals that cancel a run.
var InterruptSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT}
