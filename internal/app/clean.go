package app

// CleanOptions configures the clean subcommand.
type CleanOptions struct {
	// Reset also removes installed dependencies.
	Reset bool
	// Verbose reports paths that were already gone.
	Verbose bool
}

var (
	cleanTargets = []string{"venv", "MANIFEST.in", ".task"}
	resetTargets = []string{"python", "bin", "lib", "share", "wheels"}
	cleanGlobs   = []string{".*_cache", "*.egg-info", "__pycache__", ".DS_Store"}
	cleanSkip    = []string{".git"}
)

// Clean removes build detritus from the project directory.
func (a *App) Clean(opts CleanOptions) error {
	silent := !opts.Verbose

	layout := a.Layout()
	targets := make([]string, 0, len(cleanTargets)+len(resetTargets)+3)
	targets = append(targets, layout.Build(), layout.Dist())
	for _, t := range cleanTargets {
		targets = append(targets, layout.Path(t))
	}
	if opts.Reset {
		for _, t := range resetTargets {
			targets = append(targets, layout.Path(t))
		}
		targets = append(targets, layout.Install())
	}

	for _, t := range targets {
		if err := a.shell.Remove(t, silent); err != nil {
			return err
		}
	}
	return a.shell.GlobRemove(layout.Root(), cleanGlobs, cleanSkip, silent)
}
