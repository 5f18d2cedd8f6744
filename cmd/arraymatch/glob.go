package main

import (
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	arraymatcher "github.com/uiui611/array-matcher"
)

var (
	flagSeparator   string
	flagNoPrefilter bool
)

func init() {
	cmdGlob.Flags.StringVar(&flagSeparator, "separator", "/", "Path segment separator.")
	cmdGlob.Flags.BoolVar(&flagNoPrefilter, "no-prefilter", false, "Disable the literal prefilter for segment globs.")
	registerFilterFlags(&cmdGlob.Flags)
}

var cmdGlob = &cmdline.Command{
	Runner:   cmdline.RunnerFunc(runGlob),
	Name:     "glob",
	Short:    "Prints the input paths matching a glob",
	Long:     "Prints the input paths, one per line, that match the glob.",
	ArgsName: "<pattern>",
	ArgsLong: `
<pattern> is a glob split into segments on the separator. "**" matches any
number of segments; '*', '?', "[abc]" and "[a-z]" match within a segment.
`,
}

func runGlob(env *cmdline.Env, args []string) error {
	if expected, got := 1, len(args); expected != got {
		return env.UsageErrorf("glob: incorrect number of arguments, expected %d, got %d", expected, got)
	}

	config := arraymatcher.DefaultConfig()
	config.Glob.Separator = flagSeparator
	config.Glob.EnablePrefilter = !flagNoPrefilter
	g, err := arraymatcher.GlobWithConfig(args[0], config)
	if err != nil {
		return err
	}
	vlog.Infof("glob %q compiled into %d alternative(s)", g, g.Program().Alternatives())

	return filter(env, func(line string) (bool, error) {
		return g.MatchPath(line), nil
	})
}
