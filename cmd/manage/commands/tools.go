package commands

import (
	"context"

	"go.trai.ch/manage/internal/app"
	"go.trai.ch/manage/internal/registry"
)

func compareEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "compare",
		Short: "report differences between two directory trees",
		Args:  []string{"LEFT", "RIGHT"},
		Handler: func(_ context.Context, v registry.Values) error {
			return a.Compare(v.Args()[0], v.Args()[1])
		},
	}
}

func bundleEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "bundle",
		Short: "create the Resources folder of a plugin bundle",
		Args:  []string{"ROOT"},
		Options: []registry.OptionSpec{
			{Long: "bundle", Short: "b", Help: "bundle name", Kind: registry.String, Default: app.DefaultBundle},
		},
		Handler: func(_ context.Context, v registry.Values) error {
			return a.Bundle(v.Args()[0], v.String("bundle"))
		},
	}
}

func examplesEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "examples",
		Short: "collect example scripts",
		Options: []registry.OptionSpec{
			{Long: "from", Short: "f", Help: "folder holding one sub-folder per project", Kind: registry.String, Default: "source/projects/chugins"},
			{Long: "to", Short: "t", Help: "destination folder", Kind: registry.String, Default: "examples"},
		},
		Handler: func(_ context.Context, v registry.Values) error {
			return a.Examples(v.String("from"), v.String("to"))
		},
	}
}

func convertEntry(a Application) registry.Entry {
	return registry.Entry{
		Name:  "convert",
		Short: "convert camelCase function declarations to snake_case",
		Args:  []string{"IN", "OUT"},
		Handler: func(_ context.Context, v registry.Values) error {
			return a.Convert(v.Args()[0], v.Args()[1])
		},
	}
}
