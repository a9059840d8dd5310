package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/beanbox/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BEANBOX_ENV", "BEANBOX_MANIFEST", "BEANBOX_SLOT_POLICY", "BEANBOX_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Env:      "local",
		Manifest: "beanbox.yaml",
		LogLevel: "info",
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BEANBOX_ENV", "production")
	t.Setenv("BEANBOX_MANIFEST", "/etc/beanbox/app.yaml")
	t.Setenv("BEANBOX_SLOT_POLICY", "error")
	t.Setenv("BEANBOX_LOG_LEVEL", "DEBUG")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/etc/beanbox/app.yaml", cfg.Manifest)
	assert.Equal(t, di.SlotPolicyError, cfg.SlotPolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// real environment wins over the file
	t.Setenv("BEANBOX_ENV", "testing")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BEANBOX_ENV=production\nBEANBOX_MANIFEST=garage.yaml\nBEANBOX_SLOT_POLICY=ignore\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testing", cfg.Env)
	assert.Equal(t, "garage.yaml", cfg.Manifest)
	assert.Equal(t, di.SlotPolicyIgnore, cfg.SlotPolicy)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		value  string
		substr string
	}{
		{name: "slot policy", key: "BEANBOX_SLOT_POLICY", value: "strict", substr: "BEANBOX_SLOT_POLICY"},
		{name: "log level", key: "BEANBOX_LOG_LEVEL", value: "loud", substr: "BEANBOX_LOG_LEVEL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.substr)
		})
	}
}
