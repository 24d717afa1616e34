package app_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/app"
	"go.trai.ch/manage/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Compare(t *testing.T) {
	a, m, out := newApp(t)
	m.comparer.EXPECT().Compare("left", "right").Return([]domain.DiffEntry{
		{Kind: domain.DiffLeftOnly, Path: "a.ck"},
		{Kind: domain.DiffRightOnly, Path: "b.ck"},
		{Kind: domain.DiffContent, Path: "chuck.h"},
		{Kind: domain.DiffLeftOnly, Path: filepath.Join("core", "ulib.cpp")},
		{Kind: domain.DiffContent, Path: filepath.Join("core", "vm.cpp")},
	}, nil)

	require.NoError(t, a.Compare("left", "right"))

	g := goldie.New(t)
	g.Assert(t, "compare_report", out.Bytes())
}

func TestApp_Compare_Error(t *testing.T) {
	a, m, out := newApp(t)
	boom := errors.New("failed to read directory")
	m.comparer.EXPECT().Compare("left", "missing").Return(nil, boom)

	require.ErrorIs(t, a.Compare("left", "missing"), boom)
	assert.Empty(t, out.String())
}

func TestApp_Bundle(t *testing.T) {
	resources := filepath.Join("max", "externals", "chuck~.mxo", "Contents", "Resources")

	t.Run("Creates", func(t *testing.T) {
		a, m, out := newApp(t)
		m.shell.EXPECT().Exists(resources).Return(false)
		m.shell.EXPECT().MakeDirs(resources).Return(nil)

		require.NoError(t, a.Bundle("max", ""))
		assert.Contains(t, out.String(), "project root: max\n")
		assert.Contains(t, out.String(), "created: "+resources+"\n")
	})

	t.Run("Skips", func(t *testing.T) {
		a, m, out := newApp(t)
		m.shell.EXPECT().Exists(resources).Return(true)

		require.NoError(t, a.Bundle("max", app.DefaultBundle))
		assert.Contains(t, out.String(), "skipped creating Resources folder\n")
	})

	t.Run("CustomBundle", func(t *testing.T) {
		a, m, _ := newApp(t)
		custom := filepath.Join("max", "externals", "chugl.mxo", "Contents", "Resources")
		m.shell.EXPECT().Exists(custom).Return(false)
		m.shell.EXPECT().MakeDirs(custom).Return(errors.New("read-only"))

		require.EqualError(t, a.Bundle("max", "chugl.mxo"), "read-only")
	})
}

func TestApp_Examples(t *testing.T) {
	a, m, _ := newApp(t)
	m.shell.EXPECT().Glob("chugins", app.ExamplePatterns).Return([]string{
		filepath.Join("chugins", "Bitcrusher", "bitcrusher-test.ck"),
		filepath.Join("chugins", "FIR", "fir-test.ck"),
	}, nil)
	m.shell.EXPECT().GlobCopy("chugins", "examples", app.ExamplePatterns).Return(nil)

	require.NoError(t, a.Examples("chugins", "examples"))
}

func TestApp_Examples_MissingSource(t *testing.T) {
	a, m, _ := newApp(t)
	m.shell.EXPECT().Glob("nope", gomock.Any()).Return(nil, nil)
	m.shell.EXPECT().GlobCopy("nope", "examples", gomock.Any()).Return(domain.ErrSourceNotFound)

	require.ErrorIs(t, a.Examples("nope", "examples"), domain.ErrSourceNotFound)
}

func TestApp_Convert(t *testing.T) {
	a, m, _ := newApp(t)
	src := "// chuck~ api\n" +
		"\n" +
		"    t_max_err chuckStart(t_ck *x)\n" +
		"void ckRun (t_ck *x, long argc)\n" +
		"static int x = 1;\n" +
		"int main(void)\n"

	m.shell.EXPECT().ReadFile("api.cpp").Return([]byte(src), nil)
	m.shell.EXPECT().WriteFile("api2.cpp", gomock.Any()).DoAndReturn(func(_ string, data []byte) error {
		assert.Equal(t,
			"t_max_err chuck_start(t_ck *x)\n"+
				"void ck_run (t_ck *x, long argc)\n"+
				"int main(void)\n",
			string(data))
		return nil
	})

	require.NoError(t, a.Convert("api.cpp", "api2.cpp"))
}

func TestApp_Convert_ReadFails(t *testing.T) {
	a, m, _ := newApp(t)
	boom := errors.New("failed to read file")
	m.shell.EXPECT().ReadFile("api.cpp").Return(nil, boom)

	require.ErrorIs(t, a.Convert("api.cpp", "api2.cpp"), boom)
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"chuckStart":   "chuck_start",
		"ChuckStart":   "chuck_start",
		"already_done": "already_done",
		"getHTTP":      "get_h_t_t_p",
		"x":            "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, app.SnakeCase(in), in)
	}
}
