package cli

import "github.com/urfave/cli/v2"

// AliasStringFlag is a string flag whose aliases are listed before its name, so that help
// output shows the short form first.
type AliasStringFlag struct {
	cli.StringFlag
}

// Names returns the aliases followed by the name.
func (f AliasStringFlag) Names() []string {
	names := make([]string, 0, len(f.Aliases)+1)
	names = append(names, f.Aliases...)
	return append(names, f.Name)
}

// String returns the help text of the wrapped flag.
func (f AliasStringFlag) String() string {
	return f.StringFlag.String()
}
