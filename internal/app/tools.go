package app

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultBundle is the plugin bundle created by Bundle when none is given.
const DefaultBundle = "chuck~.mxo"

// ExamplePatterns select the example scripts copied by Examples.
var ExamplePatterns = []string{"*/*.ck"}

const rule = "--------------------------------------------------------------------------------"

// Compare prints the differences between two directory trees.
func (a *App) Compare(left, right string) error {
	entries, err := a.comparer.Compare(left, right)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Comparing directories: '%s' and '%s'\n", left, right)
	for _, e := range entries {
		switch e.Kind {
		case domain.DiffLeftOnly:
			_, _ = fmt.Fprintln(a.out, "ONLY LEFT: "+filepath.Join(left, e.Path))
		case domain.DiffRightOnly:
			_, _ = fmt.Fprintln(a.out, "ONLY RIGHT: "+filepath.Join(right, e.Path))
		case domain.DiffContent:
			_, _ = fmt.Fprintf(a.out, "DIFFERENT FILES: %s and %s\n",
				filepath.Join(left, e.Path), filepath.Join(right, e.Path))
		}
	}
	return nil
}

// Bundle makes sure the Resources folder of a plugin bundle exists below root.
func (a *App) Bundle(root, bundle string) error {
	if bundle == "" {
		bundle = DefaultBundle
	}
	resources := filepath.Join(root, "externals", bundle, "Contents", "Resources")

	_, _ = fmt.Fprintln(a.out, rule)
	_, _ = fmt.Fprintln(a.out, "project root: "+root)
	if a.shell.Exists(resources) {
		_, _ = fmt.Fprintln(a.out, "skipped creating Resources folder")
	} else {
		if err := a.shell.MakeDirs(resources); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.out, "created: "+resources)
	}
	_, _ = fmt.Fprintln(a.out, rule)
	return nil
}

// Examples copies the example scripts found one level below from into to.
func (a *App) Examples(from, to string) error {
	matches, err := a.shell.Glob(from, ExamplePatterns)
	if err != nil {
		return err
	}
	for _, m := range matches {
		a.logger.Info("copying " + m + " to " + to)
	}

	if err := a.shell.GlobCopy(from, to, ExamplePatterns); err != nil {
		return err
	}
	a.logger.Info("copied " + strconv.Itoa(len(matches)) + " examples")
	return nil
}

var funcDecl = regexp.MustCompile(`^(\w+( )?){2,}\([^!@#$+%^]+?\)`)

// Convert rewrites camelCase function names declared in in to snake_case and
// writes the converted declarations, one per line, to out. Lines without a
// declaration are dropped.
func (a *App) Convert(in, out string) error {
	data, err := a.shell.ReadFile(in)
	if err != nil {
		return err
	}

	var b strings.Builder
	converted := 0
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := funcDecl.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		b.WriteString(strings.ReplaceAll(line, name, SnakeCase(name)))
		b.WriteByte('\n')
		converted++
	}

	if err := a.shell.WriteFile(out, []byte(b.String())); err != nil {
		return zerr.With(err, "source", in)
	}
	a.logger.Info("converted " + strconv.Itoa(converted) + " declarations")
	return nil
}

// SnakeCase converts a camelCase identifier to snake_case. Every upper case
// letter after the first character starts a new word.
func SnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
