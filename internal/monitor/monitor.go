package monitor

import (
	"time"

	"gpufleet/internal/logger"
	"gpufleet/internal/store"
)

// Monitor owns a single host's connection lifecycle: open a session, poll
// the status command in a loop, and write results into the shared store.
//
// A monitor terminates permanently on the first session-level failure
// (connect refused, disconnect mid-poll). It never reconnects; the host
// shows a fixed error line for the rest of the process lifetime. Command
// failures (nonzero exit) are transient and leave the previous record
// untouched so viewers keep seeing the last good output.
type Monitor struct {
	host     string
	command  string
	interval time.Duration
	pad      int

	store *store.Store
	dial  Dialer
	log   logger.Logger
}

// run drives the poll loop until the session fails or done is closed.
// All effects are observed through the store; nothing is returned.
func (m *Monitor) run(done <-chan struct{}) {
	sess, err := m.dial.Dial(m.host)
	if err != nil {
		m.log.Error("[%-*s] connect failed: %v", m.pad, m.host, err)
		m.fail(err)
		return
	}
	defer sess.Close()
	m.log.Info("[%-*s] SSH connection established", m.pad, m.host)

	for {
		out, code, err := sess.Run(m.command)
		if err != nil {
			m.log.Error("[%-*s] session lost: %v", m.pad, m.host, err)
			m.fail(err)
			return
		}

		if code != 0 {
			// Stale-data policy: a failing command never erases the
			// last good record (or the placeholder).
			m.log.Warn("[%-*s] status command failed, exit=%d", m.pad, m.host, code)
		} else {
			m.store.Set(m.host, out)
			m.log.Debug("[%-*s] OK (%d bytes)", m.pad, m.host, len(out))
		}

		select {
		case <-time.After(m.interval):
		case <-done:
			return
		}
	}
}

// fail records the terminal error line for this host. Nothing writes this
// host's record afterwards.
func (m *Monitor) fail(err error) {
	m.store.Set(m.host, ErrorLine(m.host, err.Error()))
}
