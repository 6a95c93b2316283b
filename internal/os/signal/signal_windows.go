//go:build windows

package signal

import "os"

// InterruptSignals contains the signals that cancel a run.
var InterruptSignals = []os.Signal{os.Interrupt}
