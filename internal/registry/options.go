package registry

import (
	"maps"

	"github.com/spf13/cast"
)

// OptionKind is the value type of an option.
type OptionKind int

const (
	// Bool options are switches.
	Bool OptionKind = iota
	// String options take a value.
	String
)

// OptionSpec declares one option of a subcommand.
type OptionSpec struct {
	Long  string
	Short string
	Help  string
	Kind  OptionKind
	// Default is parsed according to Kind. An empty default is false or "".
	Default string
}

// Values holds the parsed options and positional arguments of one invocation.
type Values struct {
	bools   map[string]bool
	strings map[string]string
	args    []string
}

// NewValues creates Values from already parsed options. It is mostly useful in tests.
func NewValues(bools map[string]bool, strs map[string]string, args ...string) Values {
	return Values{bools: maps.Clone(bools), strings: maps.Clone(strs), args: args}
}

// Bool returns the value of the named switch, false when it was not declared.
func (v Values) Bool(name string) bool {
	return v.bools[name]
}

// String returns the value of the named option, "" when it was not declared.
func (v Values) String(name string) string {
	return v.strings[name]
}

// Args returns the positional arguments.
func (v Values) Args() []string {
	return v.args
}

func (o OptionSpec) defaultBool() bool {
	return cast.ToBool(o.Default)
}
