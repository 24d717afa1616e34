package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/adapters/shell"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/manage/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecutor_Execute_LogsOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("hello")
	log.EXPECT().Warn("oops")

	cmd := domain.NewCommand(t.TempDir(), "sh", "-c", "echo hello; echo oops >&2")
	require.NoError(t, shell.NewExecutor(log).Execute(context.Background(), cmd, nil, nil))
}

func TestExecutor_Execute_WritersAndEnv(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var stdout, stderr bytes.Buffer
	cmd := domain.NewCommand(t.TempDir(), "sh", "-c", `echo "static=$STATIC"; echo err >&2`).WithEnv("STATIC", "1")

	require.NoError(t, shell.NewExecutor(log).Execute(context.Background(), cmd, &stdout, &stderr))
	assert.Equal(t, "static=1\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	var stdout bytes.Buffer
	cmd := domain.NewCommand(dir, "sh", "-c", "pwd -P")
	require.NoError(t, shell.NewExecutor(mocks.NewMockLogger(ctrl)).Execute(context.Background(), cmd, &stdout, nil))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", stdout.String())
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	cmd := domain.NewCommand(dir, "sh", "-c", "exit 3")
	err := shell.NewExecutor(log).Execute(context.Background(), cmd, nil, nil)

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr), "expected CommandError, got %T", err)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, []string{"sh", "-c", "exit 3"}, cmdErr.Args)
	assert.Equal(t, dir, cmdErr.Dir)
}

func TestExecutor_Execute_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := domain.NewCommand("", "definitely-not-a-real-tool-1234")

	err := shell.NewExecutor(mocks.NewMockLogger(ctrl)).Execute(context.Background(), cmd, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestExecutor_Execute_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	err := shell.NewExecutor(mocks.NewMockLogger(ctrl)).Execute(context.Background(), domain.Command{}, nil, nil)
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Execute_WithVertex(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("hello to stdout")
	log.EXPECT().Warn("hello to stderr")

	var vertexOut, vertexErr bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&vertexOut).AnyTimes()
	vertex.EXPECT().Stderr().Return(&vertexErr).AnyTimes()

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	cmd := domain.NewCommand(t.TempDir(), "sh", "-c", "echo hello to stdout; echo hello to stderr >&2")

	require.NoError(t, shell.NewExecutor(log).Execute(ctx, cmd, nil, nil))
	assert.Contains(t, vertexOut.String(), "hello to stdout")
	assert.Contains(t, vertexErr.String(), "hello to stderr")
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := domain.NewCommand("", "sh", "-c", "sleep 5")
	err := shell.NewExecutor(mocks.NewMockLogger(ctrl)).Execute(ctx, cmd, nil, nil)
	require.Error(t, err)
}
