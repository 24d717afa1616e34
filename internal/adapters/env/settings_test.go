package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/adapters/env"
	"go.trai.ch/manage/internal/core/domain"
)

type fakeEnv map[string]string

func (f fakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func (f fakeEnv) Setenv(key, value string) error {
	f[key] = value
	return nil
}

func TestLoadSettings_Defaults(t *testing.T) {
	s := env.LoadSettings(fakeEnv{}, domain.PlatformLinux)

	assert.True(t, s.Debug)
	assert.True(t, s.Color)
	assert.Equal(t, domain.DefaultPython, s.Python)
	assert.Empty(t, s.DeploymentTarget)
	assert.Empty(t, s.Warnings)
}

func TestLoadSettings_Flags(t *testing.T) {
	tests := []struct {
		name      string
		environ   fakeEnv
		wantDebug bool
		wantColor bool
		wantWarns int
	}{
		{name: "Zero", environ: fakeEnv{"DEBUG": "0", "COLOR": "0"}, wantDebug: false, wantColor: false},
		{name: "One", environ: fakeEnv{"DEBUG": "1", "COLOR": "1"}, wantDebug: true, wantColor: true},
		{name: "Mixed", environ: fakeEnv{"DEBUG": "0", "COLOR": "1"}, wantDebug: false, wantColor: true},
		{name: "Empty", environ: fakeEnv{"DEBUG": "", "COLOR": ""}, wantDebug: true, wantColor: true},
		{name: "Invalid", environ: fakeEnv{"DEBUG": "yes", "COLOR": "0"}, wantDebug: true, wantColor: false, wantWarns: 1},
		{name: "LeadingZeros", environ: fakeEnv{"DEBUG": "08", "COLOR": "00"}, wantDebug: true, wantColor: false},
		{name: "SpacesAndSign", environ: fakeEnv{"DEBUG": " -0 ", "COLOR": "+2\n"}, wantDebug: false, wantColor: true},
		{name: "Underscores", environ: fakeEnv{"DEBUG": "1_000", "COLOR": "0_0"}, wantDebug: true, wantColor: false},
		{name: "DoubleSign", environ: fakeEnv{"DEBUG": "+-1", "COLOR": "-1"}, wantDebug: true, wantColor: true, wantWarns: 1},
		{name: "Hex", environ: fakeEnv{"DEBUG": "0x1", "COLOR": "0"}, wantDebug: true, wantColor: false, wantWarns: 1},
		{name: "Float", environ: fakeEnv{"DEBUG": "1.0", "COLOR": "_1"}, wantDebug: true, wantColor: true, wantWarns: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := env.LoadSettings(tt.environ, domain.PlatformLinux)
			assert.Equal(t, tt.wantDebug, s.Debug)
			assert.Equal(t, tt.wantColor, s.Color)
			assert.Len(t, s.Warnings, tt.wantWarns)
		})
	}
}

func TestLoadSettings_DeploymentTarget(t *testing.T) {
	t.Run("set once when absent", func(t *testing.T) {
		environ := fakeEnv{}
		s := env.LoadSettings(environ, domain.PlatformDarwin)

		assert.Equal(t, domain.DefaultDeploymentTarget, s.DeploymentTarget)
		assert.Equal(t, domain.DefaultDeploymentTarget, environ[env.DeploymentTargetVar])
	})

	t.Run("existing value kept", func(t *testing.T) {
		environ := fakeEnv{env.DeploymentTargetVar: "14.0"}
		s := env.LoadSettings(environ, domain.PlatformDarwin)

		assert.Equal(t, "14.0", s.DeploymentTarget)
		assert.Equal(t, "14.0", environ[env.DeploymentTargetVar])
	})

	t.Run("ignored off darwin", func(t *testing.T) {
		environ := fakeEnv{}
		s := env.LoadSettings(environ, domain.PlatformLinux)

		assert.Empty(t, s.DeploymentTarget)
		_, ok := environ[env.DeploymentTargetVar]
		require.False(t, ok)
	})
}

func TestLoadSettings_Python(t *testing.T) {
	s := env.LoadSettings(fakeEnv{"PYTHON": "/usr/bin/python3.12"}, domain.PlatformLinux)
	assert.Equal(t, "/usr/bin/python3.12", s.Python)
}

func TestLoadSettings_LogFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		wantJSON  bool
		wantWarns int
	}{
		{name: "Pretty", format: "pretty"},
		{name: "JSON", format: " JSON ", wantJSON: true},
		{name: "Unknown", format: "xml", wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := env.LoadSettings(fakeEnv{"LOG_FORMAT": tt.format}, domain.PlatformLinux)
			assert.Equal(t, tt.wantJSON, s.LogJSON)
			assert.Len(t, s.Warnings, tt.wantWarns)
		})
	}
}
