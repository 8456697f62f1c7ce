package monitor

import (
	"fmt"
	"sync"
	"time"

	"gpufleet/internal/logger"
	"gpufleet/internal/store"
)

// Config holds the settings shared by all monitors in a fleet.
type Config struct {
	// Command is the status command run on every host. Defaults to
	// DefaultCommand when empty.
	Command string

	// Interval is the pause between polls. Defaults to DefaultInterval
	// when zero.
	Interval time.Duration

	// Dialer opens remote sessions. Required.
	Dialer Dialer

	// Logger receives per-host lifecycle messages. Defaults to Noop.
	Logger logger.Logger
}

// Fleet runs one Monitor per registered host, each in its own goroutine.
//
// Failed monitors are not restarted. A failure on one host, including a
// panic from an unexpected code path, is contained to that host: its record
// becomes an error line and every other monitor keeps polling.
type Fleet struct {
	cfg      Config
	store    *store.Store
	monitors []*Monitor

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewFleet creates a fleet for every host registered in st.
func NewFleet(st *store.Store, cfg Config) *Fleet {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Noop()
	}

	hosts := st.Hosts()
	pad := 0
	for _, h := range hosts {
		if len(h) > pad {
			pad = len(h)
		}
	}

	f := &Fleet{
		cfg:   cfg,
		store: st,
		done:  make(chan struct{}),
	}
	for _, h := range hosts {
		f.monitors = append(f.monitors, &Monitor{
			host:     h,
			command:  cfg.Command,
			interval: cfg.Interval,
			pad:      pad,
			store:    st,
			dial:     cfg.Dialer,
			log:      cfg.Logger,
		})
	}
	return f
}

// Start writes the placeholder record for every host, then launches all
// monitors concurrently. Placeholders are written synchronously so a render
// issued immediately after Start shows a line per host.
func (f *Fleet) Start() {
	for _, m := range f.monitors {
		f.store.Set(m.host, PlaceholderLine(m.host))
	}

	for _, m := range f.monitors {
		f.wg.Add(1)
		go func(m *Monitor) {
			defer f.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					// One host's unexpected failure must not take
					// down its siblings or the viewer path.
					f.cfg.Logger.Error("[%-*s] monitor crashed: %v", m.pad, m.host, r)
					m.fail(fmt.Errorf("unexpected error: %v", r))
				}
			}()
			m.run(f.done)
		}(m)
	}
}

// Stop signals all monitors to exit after their current poll and waits for
// them to finish.
func (f *Fleet) Stop() {
	f.once.Do(func() {
		close(f.done)
	})
	f.wg.Wait()
}
