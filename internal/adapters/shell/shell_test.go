package shell_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/adapters/shell"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type shellMocks struct {
	fs        *mocks.MockFileSystem
	executor  *mocks.MockExecutor
	fetcher   *mocks.MockFetcher
	extractor *mocks.MockExtractor
	logger    *mocks.MockLogger
}

func newShell(t *testing.T) (*shell.Shell, shellMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := shellMocks{
		fs:        mocks.NewMockFileSystem(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		fetcher:   mocks.NewMockFetcher(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	return shell.New(m.fs, m.executor, m.fetcher, m.extractor, m.logger), m
}

func TestShell_Run(t *testing.T) {
	sh, m := newShell(t)
	cmd := domain.CMakeBuild("build", true)

	m.logger.EXPECT().Info("cmake --build build --config Release")
	m.executor.EXPECT().Execute(gomock.Any(), cmd, nil, nil).Return(nil)

	require.NoError(t, sh.Run(context.Background(), cmd))
}

func TestShell_Run_PropagatesCommandError(t *testing.T) {
	sh, m := newShell(t)
	cmd := domain.NewCommand("", "git", "clone", "repo")
	want := &domain.CommandError{Args: cmd.Args, ExitCode: 128}

	m.logger.EXPECT().Info(gomock.Any())
	m.executor.EXPECT().Execute(gomock.Any(), cmd, nil, nil).Return(want)

	err := sh.Run(context.Background(), cmd)
	assert.Same(t, want, err)
}

func TestShell_Output(t *testing.T) {
	sh, m := newShell(t)
	cmd := domain.NewCommand("", "git", "rev-parse", "HEAD")

	m.logger.EXPECT().Debug("git rev-parse HEAD")
	m.executor.EXPECT().Execute(gomock.Any(), cmd, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, err := stdout.Write([]byte("  abc123\n"))
			return err
		})

	out, err := sh.Output(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "abc123", out)
}

func TestShell_Download_Fetches(t *testing.T) {
	sh, m := newShell(t)
	url := "https://www.python.org/ftp/python/3.11.7/Python-3.11.7.tgz"
	dest := filepath.Join("build")
	target := filepath.Join(dest, "Python-3.11.7.tgz")

	m.fs.EXPECT().Exists(target).Return(false)
	m.fs.EXPECT().MakeDirs(dest).Return(nil)
	m.logger.EXPECT().Info("downloading " + url)
	m.fetcher.EXPECT().Fetch(gomock.Any(), url, target).Return(nil)

	got, err := sh.Download(context.Background(), url, dest)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestShell_Download_Idempotent(t *testing.T) {
	sh, m := newShell(t)
	url := "https://example.com/releases/src.tar.xz?raw=1"
	target := filepath.Join("build", "src.tar.xz")

	m.fs.EXPECT().Exists(target).Return(true)
	m.logger.EXPECT().Debug(gomock.Any())

	got, err := sh.Download(context.Background(), url, "build")
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestShell_Download_NoFileName(t *testing.T) {
	sh, _ := newShell(t)
	_, err := sh.Download(context.Background(), "https://example.com/", "build")
	require.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestShell_Extract(t *testing.T) {
	sh, m := newShell(t)

	m.logger.EXPECT().Info("extracting src.tgz to build")
	m.extractor.EXPECT().Extract("src.tgz", "build").Return(&domain.UnsupportedArchiveError{Path: "src.tgz"})

	err := sh.Extract("src.tgz", "build")
	assert.EqualError(t, err, "cannot extract from this file: src.tgz")
}

// The façade delegates filesystem work to the embedded FileSystem.
func TestShell_FileSystemDelegation(t *testing.T) {
	sh, m := newShell(t)
	m.fs.EXPECT().Remove("build", true).Return(nil)
	m.fs.EXPECT().Exists("thirdparty").Return(true)

	require.NoError(t, sh.Remove("build", true))
	assert.True(t, sh.Exists("thirdparty"))
}

func TestShell_EndToEnd(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	sh := shell.New(nil, shell.NewExecutor(log), nil, nil, log)

	out, err := sh.Output(context.Background(), domain.NewCommand(dir, "sh", "-c", "echo built > out.txt; echo done"))
	require.NoError(t, err)
	assert.Equal(t, "done", out)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "built\n", string(data))
}
