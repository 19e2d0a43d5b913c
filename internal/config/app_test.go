package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadAppConfigFrom_Defaults(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := LoadAppConfigFrom(newViper())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/freemium/freemium.db"), cfg.DatabasePath)
	assert.Equal(t, DefaultSidebarBreakpoint, cfg.SidebarBreakpoint)
	assert.Empty(t, cfg.Theme)
	assert.False(t, cfg.AdsProduction)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadAppConfigFrom_Overrides(t *testing.T) {
	dir := t.TempDir()
	v := newViper()
	v.Set(KeyDatabasePath, filepath.Join(dir, "prefs.db"))
	v.Set(KeyTheme, " Dark ")
	v.Set(KeySidebarBreakpoint, 140)
	v.Set(KeyAdsProduction, true)
	v.Set(KeyAdsClient, "ca-pub-123")

	cfg, err := LoadAppConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "prefs.db"), cfg.DatabasePath)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 140, cfg.SidebarBreakpoint)
	assert.True(t, cfg.AdsProduction)
	assert.Equal(t, "ca-pub-123", cfg.AdsClient)
}

func TestLoadAppConfigFrom_Invalid(t *testing.T) {
	tests := []struct {
		set     map[string]any
		wantErr error
		name    string
	}{
		{
			name:    "unknown theme",
			set:     map[string]any{KeyTheme: "solarized"},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "production ads without client",
			set:     map[string]any{KeyAdsProduction: true},
			wantErr: common.ErrMissingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := LoadAppConfigFrom(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadAppConfigFrom_NonPositiveBreakpoint(t *testing.T) {
	v := newViper()
	v.Set(KeySidebarBreakpoint, 0)

	cfg, err := LoadAppConfigFrom(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultSidebarBreakpoint, cfg.SidebarBreakpoint)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FREEMIUM_TEST_DIR", "/tmp/freemium")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/db/prefs.db", filepath.Join(home, "db/prefs.db")},
		{"$FREEMIUM_TEST_DIR/prefs.db", "/tmp/freemium/prefs.db"},
		{"/absolute/path", "/absolute/path"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.input), tt.input)
	}
}
