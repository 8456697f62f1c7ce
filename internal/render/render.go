// Package render turns the store's current records into the HTML snapshot
// pushed to viewers.
package render

import (
	"strings"

	"gpufleet/internal/ansi"
	"gpufleet/internal/store"
)

// Converter rewrites text containing ANSI escape codes as styled markup.
type Converter func(string) string

// Snapshot concatenates every non-empty record in registration order and
// runs the converter over the accumulated text exactly once.
//
// The result is fully determined by the store contents at call time.
func Snapshot(st *store.Store, conv Converter) string {
	var b strings.Builder
	for _, rec := range st.Entries() {
		if rec.Body == "" {
			continue
		}
		b.WriteString(rec.Body)
	}
	return conv(b.String())
}

// HTML renders the snapshot with the default ANSI to HTML converter.
func HTML(st *store.Store) string {
	return Snapshot(st, ansi.Convert)
}
