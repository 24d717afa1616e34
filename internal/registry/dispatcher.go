package registry

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultArgs replaces an empty command line.
var DefaultArgs = []string{"--help"}

// Dispatcher turns a frozen table into a command line interface.
type Dispatcher struct {
	rootCmd *cobra.Command
	table   *Table
	// handled is set once a handler starts, separating its errors from parse errors.
	handled bool
}

// NewDispatcher builds the root command for the entries of t. The table is
// frozen as a side effect.
func NewDispatcher(name, short, version string, t *Table) *Dispatcher {
	t.Freeze()

	rootCmd := &cobra.Command{
		Use:           name,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	d := &Dispatcher{rootCmd: rootCmd, table: t}
	for _, e := range t.Entries() {
		rootCmd.AddCommand(d.newCommand(e))
	}
	return d
}

func (d *Dispatcher) newCommand(e Entry) *cobra.Command {
	use := e.Name
	if len(e.Args) > 0 {
		use += " " + strings.Join(e.Args, " ")
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: e.Short,
		Args:  cobra.ExactArgs(len(e.Args)),
	}

	bools := make(map[string]*bool)
	strs := make(map[string]*string)
	for _, opt := range e.Options {
		switch opt.Kind {
		case Bool:
			bools[opt.Long] = cmd.Flags().BoolP(opt.Long, opt.Short, opt.defaultBool(), opt.Help)
		case String:
			strs[opt.Long] = cmd.Flags().StringP(opt.Long, opt.Short, opt.Default, opt.Help)
		}
	}
	cmd.Flags().SortFlags = false

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		d.handled = true
		entry, ok := d.table.Lookup(e.Name)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "cannot dispatch"), "command", e.Name)
		}
		v := Values{
			bools:   make(map[string]bool, len(bools)),
			strings: make(map[string]string, len(strs)),
			args:    args,
		}
		for name, p := range bools {
			v.bools[name] = *p
		}
		for name, p := range strs {
			v.strings[name] = *p
		}
		return entry.Handler(cmd.Context(), v)
	}
	return cmd
}

// Dispatch parses args, resolves the subcommand and runs its handler.
// Command line errors are printed with the usage of the offending command and
// returned as *UsageError. Handler errors are returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = DefaultArgs
	}
	d.rootCmd.SetArgs(args)
	d.handled = false

	cmd, err := d.rootCmd.ExecuteContextC(ctx)
	if err == nil || d.handled {
		return err
	}

	_, _ = fmt.Fprintln(d.rootCmd.ErrOrStderr(), "Error: "+err.Error())
	if cmd != nil {
		_, _ = fmt.Fprint(d.rootCmd.ErrOrStderr(), cmd.UsageString())
	}
	return &UsageError{Err: err}
}

// SetOutput sets the output and error streams of the root command.
func (d *Dispatcher) SetOutput(out, errOut io.Writer) {
	d.rootCmd.SetOut(out)
	d.rootCmd.SetErr(errOut)
}

// UsageError reports a malformed command line.
type UsageError struct {
	Err error
}

// Error implements error.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the parser error.
func (e *UsageError) Unwrap() error {
	return e.Err
}
