package sshkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSettingsParsing(t *testing.T) {
	// Point config resolution at an empty home so developer ~/.ssh/config
	// entries can't leak into assertions.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USER", "tester")

	tests := []struct {
		name     string
		host     string
		wantHost string
		wantPort string
		wantUser string
	}{
		{
			name:     "bare hostname",
			host:     "gpunode1",
			wantHost: "gpunode1",
			wantPort: "22",
			wantUser: "tester",
		},
		{
			name:     "user at host",
			host:     "ops@10.0.0.5",
			wantHost: "10.0.0.5",
			wantPort: "22",
			wantUser: "ops",
		},
		{
			name:     "host with port",
			host:     "10.0.0.5:2222",
			wantHost: "10.0.0.5",
			wantPort: "2222",
			wantUser: "tester",
		},
		{
			name:     "user host and port",
			host:     "ops@gpunode1:2200",
			wantHost: "gpunode1",
			wantPort: "2200",
			wantUser: "ops",
		},
		{
			name:     "colon suffix that is not a port",
			host:     "weird:name",
			wantHost: "weird:name",
			wantPort: "22",
			wantUser: "tester",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := resolveSettings(tt.host)
			assert.Equal(t, tt.wantHost, s.hostname)
			assert.Equal(t, tt.wantPort, s.port)
			assert.Equal(t, tt.wantUser, s.user)
		})
	}
}

func TestSettingsAddress(t *testing.T) {
	s := &settings{hostname: "gpunode1", port: "2222"}
	assert.Equal(t, "gpunode1:2222", s.address())
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("22"))
	assert.True(t, isDigits("48109"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("2a2"))
	assert.False(t, isDigits("name"))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home+"/.ssh/id_ed25519", expandPath("~/.ssh/id_ed25519"))
	assert.Equal(t, "/abs/path/key", expandPath("/abs/path/key"))
}

func TestCloseNilClient(t *testing.T) {
	c := &Client{}
	assert.NoError(t, c.Close())
}
