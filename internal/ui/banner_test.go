package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderBannerContainsCoreFields(t *testing.T) {
	out := RenderBanner(BannerInfo{
		Version:  "v0.3.0",
		Addr:     ":48109",
		Hosts:    []string{"gpunode1", "ops@gpunode2"},
		Interval: 5 * time.Second,
		Command:  "gpustat --color",
	})

	assert.Contains(t, out, "gpufleet")
	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, "http://localhost:48109")
	assert.Contains(t, out, "5s")
	assert.Contains(t, out, "gpustat --color")
	assert.Contains(t, out, "gpunode1")
	assert.Contains(t, out, "ops@gpunode2")
}

func TestRenderBannerHostsInOrder(t *testing.T) {
	out := RenderBanner(BannerInfo{
		Addr:     ":48109",
		Hosts:    []string{"zeta", "alpha"},
		Interval: time.Second,
		Command:  "gpustat",
	})

	zi := strings.Index(out, "zeta")
	ai := strings.Index(out, "alpha")
	assert.Greater(t, ai, zi, "hosts should render in configured order")
}

func TestRenderBannerWithoutVersion(t *testing.T) {
	out := RenderBanner(BannerInfo{
		Addr:     ":48109",
		Hosts:    []string{"a"},
		Interval: time.Second,
		Command:  "gpustat",
	})
	assert.Contains(t, out, "gpufleet")
}

// lipgloss may wrap styled segments in escape sequences depending on the
// terminal profile; Contains checks stay robust either way.

func TestDisplayAddr(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "port only", addr: ":48109", want: ":48109"},
		{name: "host and port", addr: "0.0.0.0:8080", want: ":8080"},
		{name: "bare port", addr: "9000", want: ":9000"},
		{name: "empty", addr: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayAddr(tt.addr))
		})
	}
}
