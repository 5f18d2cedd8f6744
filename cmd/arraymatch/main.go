package main

import (
	"regexp"

	"v.io/x/lib/cmdline"
)

func main() {
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile(`^(v|logtostderr)$`))
	cmdline.Main(cmdRoot)
}

var cmdRoot = &cmdline.Command{
	Name:  "arraymatch",
	Short: "Matches paths and object paths against patterns",
	Long: `
Command arraymatch filters its standard input through a glob or a CSS-like
query selector. Each input line is one target: a path for glob, a JSON array
of objects for select.
`,
	Children: []*cmdline.Command{cmdGlob, cmdSelect},
}
