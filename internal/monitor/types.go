package monitor

import "time"

// Defaults for the polling loop. The status command matches what the
// dashboard renders: colored gpustat output with a fixed name column.
const (
	DefaultCommand  = "gpustat --color --gpuname-width 25"
	DefaultInterval = 5 * time.Second
)

// Session is an established remote connection able to run the status
// command repeatedly.
//
// Run returns the command's stdout and exit code. A non-nil error means the
// session itself failed (disconnect, protocol error); a nonzero exit code
// with a nil error means the command ran and failed.
type Session interface {
	Run(cmd string) (stdout string, exitCode int, err error)
	Close() error
}

// Dialer opens a Session to a host.
type Dialer interface {
	Dial(host string) (Session, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(host string) (Session, error)

// Dial calls f(host).
func (f DialerFunc) Dial(host string) (Session, error) {
	return f(host)
}
