package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"short", "abc", "****"},
		{"exactly_10", "1234567890", "****"},
		{"long_token", "eyJhbGciOiJIUzI1NiJ9.payload.sig", "eyJh****.sig"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskSecret(tt.input))
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "staging",
		Profiles: map[string]Profile{
			"staging": {Host: "http://staging:8080", Output: "json"},
		},
	}))

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.CurrentProfile)
	assert.Equal(t, "http://staging:8080", cfg.Profiles["staging"].Host)

	p := cfg.ActiveProfile("")
	assert.Equal(t, "json", p.Output)

	// Unknown override falls back to the zero profile.
	assert.Equal(t, Profile{}, cfg.ActiveProfile("missing"))
}

func TestConfigShow_TableOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Host: "http://localhost:8080", Output: "table"},
		},
	}))

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "current-profile: default")
	assert.Contains(t, out, "http://localhost:8080")
}

func TestConfigUseProfile_UnknownFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles:       map[string]Profile{"default": {}},
	}))

	_, err := runCommand(t, "config", "use-profile", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigSetProfile_CreatesProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "config", "set-profile", "--name", "dev", "--host", "http://dev:8080")
	require.NoError(t, err)

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://dev:8080", cfg.Profiles["dev"].Host)
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, validateOutputFormat(""))
	assert.NoError(t, validateOutputFormat("table"))
	assert.NoError(t, validateOutputFormat("json"))
	assert.Error(t, validateOutputFormat("yaml"))
}
