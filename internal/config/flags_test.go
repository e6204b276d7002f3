package config

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "1280x720", w: 1280, h: 720},
		{in: "320X200", w: 320, h: 200},
		{in: "1280", wantErr: true},
		{in: "ax720", wantErr: true},
		{in: "1280xb", wantErr: true},
		{in: "0x720", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	missing := filepath.Join(t.TempDir(), "none.yaml")
	require.NoError(t, fs.Parse([]string{
		"-config", missing,
		"-level", "data/maze.json",
		"-size", "640x480",
		"-workers", "3",
		"-flat",
	}))

	cfg, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "data/maze.json", cfg.Level.Path)
	assert.Equal(t, 640, cfg.Screen.Width)
	assert.Equal(t, 480, cfg.Screen.Height)
	assert.Equal(t, 3, cfg.Render.Workers)
	assert.True(t, f.Flat)
	assert.False(t, f.List)
}

func TestFlagsDefaultsLeaveConfigAlone(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg := DefaultConfig()
	require.NoError(t, f.Apply(cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFlagsBadSize(t *testing.T) {
	f := &Flags{Size: "big"}
	require.Error(t, f.Apply(DefaultConfig()))
}
