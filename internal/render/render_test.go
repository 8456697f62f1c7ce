package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gpufleet/internal/monitor"
	"gpufleet/internal/store"
)

// identity keeps rendering assertions independent of the ANSI converter.
func identity(s string) string { return s }

// tagging wraps the accumulated text so tests can count converter calls.
func tagging(calls *int) Converter {
	return func(s string) string {
		*calls++
		return "<conv>" + s + "</conv>"
	}
}

func TestSnapshotConcatenatesInRegistrationOrder(t *testing.T) {
	st := store.New([]string{"b", "a"})
	st.Set("b", "b line\n")
	st.Set("a", "a line\n")

	got := Snapshot(st, identity)
	assert.Equal(t, "b line\na line\n", got)
}

func TestSnapshotSkipsEmptyRecords(t *testing.T) {
	st := store.New([]string{"a", "b", "c"})
	st.Set("b", "only b\n")

	got := Snapshot(st, identity)
	assert.Equal(t, "only b\n", got)
}

func TestSnapshotConvertsExactlyOnce(t *testing.T) {
	st := store.New([]string{"a", "b"})
	st.Set("a", "one\n")
	st.Set("b", "two\n")

	calls := 0
	got := Snapshot(st, tagging(&calls))
	assert.Equal(t, "<conv>one\ntwo\n</conv>", got)
	assert.Equal(t, 1, calls)
}

func TestSnapshotIsIdempotent(t *testing.T) {
	st := store.New([]string{"a", "b"})
	st.Set("a", "stable a\n")
	st.Set("b", "stable b\n")

	first := Snapshot(st, identity)
	second := Snapshot(st, identity)
	assert.Equal(t, first, second)
}

func TestSnapshotOrderSurvivesMixedStates(t *testing.T) {
	// Any permutation of pending/succeeded/failed hosts renders in
	// registration order.
	st := store.New([]string{"ok", "failed", "pending"})
	st.Set("ok", "ok output\n")
	st.Set("failed", monitor.ErrorLine("failed", "connection refused"))
	st.Set("pending", monitor.PlaceholderLine("pending"))

	got := Snapshot(st, identity)

	iOK := indexOf(t, got, "ok output")
	iFail := indexOf(t, got, "connection refused")
	iPend := indexOf(t, got, "Loading ...")
	assert.Less(t, iOK, iFail)
	assert.Less(t, iFail, iPend)
}

func TestHTMLConvertsANSIRecords(t *testing.T) {
	st := store.New([]string{"mini"})
	st.Set("mini", monitor.ErrorLine("mini", "no route to host"))

	got := HTML(st)
	assert.Contains(t, got, `<span class="ansi37">(mini) </span>`)
	assert.Contains(t, got, `<span class="ansi31">no route to host</span>`)
	assert.NotContains(t, got, "\x1b")
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	i := strings.Index(s, substr)
	if i < 0 {
		t.Fatalf("%q not found in rendered snapshot", substr)
	}
	return i
}
