package domain

// Extension describes the native extension build step run after the dependencies.
type Extension struct {
	Cmd []string
	Env map[string]string
}

// Prerequisites are the packages installed by setup before any dependency is
// fetched. Apt packages apply on Linux and Brew packages on macOS.
type Prerequisites struct {
	Pip          []string
	Requirements string
	Apt          []string
	Brew         []string
	Upgrade      bool
}

// Empty reports whether nothing needs installing.
func (p Prerequisites) Empty() bool {
	return len(p.Pip) == 0 && p.Requirements == "" && len(p.Apt) == 0 && len(p.Brew) == 0
}

// Project is the parsed project file.
type Project struct {
	Version       string
	Description   string
	Tests         string
	Prerequisites Prerequisites
	Extension     Extension
	Dependencies  []*Descriptor
}

// NewProject returns an empty project with the default extension build command for python.
func NewProject(python string) *Project {
	return &Project{
		Tests: "tests",
		Extension: Extension{
			Cmd: []string{python, "setup.py", "build_ext", "--inplace"},
		},
	}
}
