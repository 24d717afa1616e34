package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		cmdEnv   map[string]string
		expected []string
	}{
		{
			name:     "SystemOnly",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			expected: []string{"PATH=/bin", "USER=test"},
		},
		{
			name:     "CommandAdds",
			sysEnv:   []string{"PATH=/bin"},
			cmdEnv:   map[string]string{"STATIC": "1"},
			expected: []string{"PATH=/bin", "STATIC=1"},
		},
		{
			name:     "CommandOverrides",
			sysEnv:   []string{"PATH=/bin", "STATIC=0"},
			cmdEnv:   map[string]string{"STATIC": "1"},
			expected: []string{"PATH=/bin", "STATIC=1"},
		},
		{
			name:     "MalformedSkipped",
			sysEnv:   []string{"NOEQUALS", "A=b=c"},
			expected: []string{"A=b=c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.cmdEnv))
		})
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "cmake")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes"), []byte("x"), 0o600))

	got, err := lookPath("cmake", []string{"PATH=/nonexistent" + string(os.PathListSeparator) + dir})
	require.NoError(t, err)
	assert.Equal(t, tool, got)

	_, err = lookPath("notes", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("cmake", []string{"USER=test"})
	require.Error(t, err)
}

func TestFindExecutable_Directory(t *testing.T) {
	assert.ErrorIs(t, findExecutable(t.TempDir()), os.ErrPermission)
}

func TestLogWriter_BuffersLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info("-- Configuring done"),
		log.EXPECT().Info("-- Generating done"),
		log.EXPECT().Info("partial"),
	)

	w := &logWriter{logger: log, level: domain.LogLevelInfo}
	_, _ = w.Write([]byte("-- Configuring "))
	_, _ = w.Write([]byte("done\r\n-- Generating done\npar"))
	_, _ = w.Write([]byte("tial"))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestLogWriter_StderrWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("CMake Warning: unused variable")

	w := &logWriter{logger: log, level: domain.LogLevelWarn}
	_, _ = w.Write([]byte("CMake Warning: unused variable\n"))
}
