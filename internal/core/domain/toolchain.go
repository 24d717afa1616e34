package domain

import "slices"

// GitCloneOptions configures a shallow git clone.
type GitCloneOptions struct {
	URL string
	// Branch is the branch or tag to check out. Empty clones the default branch.
	Branch string
	// Directory is the clone target, relative to Dir. Empty lets git pick the name.
	Directory string
	Recurse   bool
	Dir       string
}

// GitClone returns the shallow clone command for opts.
func GitClone(opts GitCloneOptions) Command {
	args := []string{"git", "clone", "--depth", "1"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.Recurse {
		args = append(args, "--recurse-submodules", "--shallow-submodules")
	}
	args = append(args, opts.URL)
	if opts.Directory != "" {
		args = append(args, opts.Directory)
	}
	return NewCommand(opts.Dir, args...)
}

// CMakeConfigure returns the configure command generating buildDir from srcDir.
// Preload scripts are passed with -C and options as -Dkey=value in sorted key order.
func CMakeConfigure(srcDir, buildDir string, scripts []string, options map[string]string) Command {
	args := []string{"cmake", "-S", srcDir, "-B", buildDir}
	for _, s := range scripts {
		args = append(args, "-C", s)
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+options[k])
	}
	return NewCommand("", args...)
}

// CMakeBuild returns the build command for buildDir.
func CMakeBuild(buildDir string, release bool) Command {
	args := []string{"cmake", "--build", buildDir}
	if release {
		args = append(args, "--config", "Release")
	}
	return NewCommand("", args...)
}

// CMakeInstall returns the install command for buildDir. An empty prefix uses the
// prefix chosen at configure time.
func CMakeInstall(buildDir, prefix string) Command {
	args := []string{"cmake", "--install", buildDir}
	if prefix != "" {
		args = append(args, "--prefix", prefix)
	}
	return NewCommand("", args...)
}

// CMakeVersion returns the command printing the installed cmake version.
func CMakeVersion() Command {
	return NewCommand("", "cmake", "--version")
}

// PipInstallOptions configures a pip invocation.
type PipInstallOptions struct {
	Pip          string
	Requirements string
	Upgrade      bool
	Packages     []string
}

// PipInstall returns the pip install command. A requirements file takes precedence
// over the package list.
func PipInstall(opts PipInstallOptions) Command {
	pip := opts.Pip
	if pip == "" {
		pip = "pip3"
	}
	args := []string{pip, "install"}
	if opts.Requirements != "" {
		return NewCommand("", append(args, "-r", opts.Requirements)...)
	}
	if opts.Upgrade {
		args = append(args, "--upgrade")
	}
	return NewCommand("", append(args, opts.Packages...)...)
}

// AptInstall returns the apt install command for pkgs.
func AptInstall(upgrade bool, pkgs ...string) Command {
	args := []string{"sudo", "apt", "install"}
	if upgrade {
		args = append(args, "--upgrade")
	}
	return NewCommand("", append(args, pkgs...)...)
}

// BrewInstall returns the homebrew commands installing pkgs, preceded by an update
// when requested.
func BrewInstall(update bool, pkgs ...string) []Command {
	var cmds []Command
	if update {
		cmds = append(cmds, NewCommand("", "brew", "update"))
	}
	args := append([]string{"brew", "install"}, pkgs...)
	return append(cmds, NewCommand("", args...))
}

// TestFilePattern selects the test files run one by one when pytest is not used.
const TestFilePattern = "test_*.py"

// Pytest returns the pytest invocation for testsDir.
func Pytest(testsDir string) Command {
	return NewCommand("", "pytest", "-vv", testsDir)
}

// PythonRun returns the command running script with python.
func PythonRun(python, script string) Command {
	return NewCommand("", python, script)
}
