package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	isatty "github.com/mattn/go-isatty"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"
)

const maxLineSize = 1 << 20

var (
	flagInvert  bool
	flagVerdict bool
)

func registerFilterFlags(flags *flag.FlagSet) {
	flags.BoolVar(&flagInvert, "invert", false, "Print the lines that do not match instead.")
	flags.BoolVar(&flagVerdict, "verdict", false, "Print true or false for every line instead of filtering. Implied when standard input is a terminal.")
}

// lineMatcher reports whether one input line matches. An error rejects the
// line without stopping the command.
type lineMatcher func(line string) (bool, error)

func filter(env *cmdline.Env, match lineMatcher) error {
	configureLogging()

	verdict := flagVerdict || isTerminal(env.Stdin)
	scanner := bufio.NewScanner(env.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines, matched, rejected int
	for scanner.Scan() {
		line := scanner.Text()
		lines++

		ok, err := match(line)
		if err != nil {
			rejected++
			vlog.Errorf("line %d: %v", lines, err)
			if verdict {
				fmt.Fprintf(env.Stderr, "error: %v\n", err)
			}
			continue
		}
		vlog.VI(2).Infof("line %d: %q matched: %v", lines, line, ok)
		if ok {
			matched++
		}

		switch {
		case verdict:
			fmt.Fprintln(env.Stdout, ok)
		case ok != flagInvert:
			fmt.Fprintln(env.Stdout, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	vlog.VI(1).Infof("%d of %d lines matched, %d rejected", matched, lines, rejected)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func configureLogging() {
	// A second configuration, as in tests running several commands, is refused
	// and keeps the first one.
	if err := vlog.ConfigureLibraryLoggerFromFlags(); err != nil {
		vlog.VI(2).Infof("logging already configured: %v", err)
	}
}
