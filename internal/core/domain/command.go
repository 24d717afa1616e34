package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds variables added on top of the inherited environment.
	Env map[string]string
}

// NewCommand creates a command that runs in dir.
func NewCommand(dir string, args ...string) Command {
	return Command{Args: args, Dir: dir}
}

// WithEnv returns a copy of the command with key set to value in its environment.
func (c Command) WithEnv(key, value string) Command {
	env := make(map[string]string, len(c.Env)+1)
	for k, v := range c.Env {
		env[k] = v
	}
	env[key] = value
	c.Env = env
	return c
}

func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
