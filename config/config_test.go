package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 1.0, c.Scale())
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    float64
		wantErr error
	}{
		{name: "integer scale", data: "wl_scale_factor = 2", want: 2},
		{name: "fractional scale", data: "wl_scale_factor = 1.5", want: 1.5},
		{name: "missing key keeps default", data: "", want: 1},
		{name: "zero", data: "wl_scale_factor = 0", wantErr: ErrInvalidScale},
		{name: "negative", data: "wl_scale_factor = -1.0", wantErr: ErrInvalidScale},
		{name: "infinite", data: "wl_scale_factor = inf", wantErr: ErrInvalidScale},
		{name: "nan", data: "wl_scale_factor = nan", wantErr: ErrInvalidScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			err := c.Load(tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Scale())
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	c := Default()
	err := c.Load("wl_scale_factor = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidScale)
	assert.Contains(t, err.Error(), "config: decode")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("wl_scale_factor = 3\n"), 0o600))

	c := Default()
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, 3.0, c.Scale())
}

func TestLoadFileMissing(t *testing.T) {
	c := Default()
	require.NoError(t, c.LoadFile(filepath.Join(t.TempDir(), "nope.toml")))
	assert.Equal(t, 1.0, c.Scale())
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("wl_scale_factor = -2\n"), 0o600))

	err := Default().LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidScale)
	assert.Contains(t, err.Error(), path)
}

func TestValidateMessage(t *testing.T) {
	c := &Config{ScaleFactor: math.Inf(1)}
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidScale)
	assert.Contains(t, err.Error(), "+Inf")
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DRAWER_CONFIG_DIR", dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), DefaultPath())
}
