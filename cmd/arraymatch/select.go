package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"

	arraymatcher "github.com/uiui611/array-matcher"
)

var (
	flagTagField   string
	flagIDField    string
	flagClassField string
)

func init() {
	defaults := arraymatcher.DefaultConfig().Selector
	cmdSelect.Flags.StringVar(&flagTagField, "tag-field", defaults.TagField, "Object key holding the tag name.")
	cmdSelect.Flags.StringVar(&flagIDField, "id-field", defaults.IDField, "Object key holding the identity.")
	cmdSelect.Flags.StringVar(&flagClassField, "class-field", defaults.ClassField, "Object key holding the class list.")
	registerFilterFlags(&cmdSelect.Flags)
}

var cmdSelect = &cmdline.Command{
	Runner:   cmdline.RunnerFunc(runSelect),
	Name:     "select",
	Short:    "Prints the input object paths matching a query selector",
	Long:     "Prints the input lines, each a JSON array of objects, whose objects match the query.",
	ArgsName: "<query>...",
	ArgsLong: `
<query> is a CSS-like selector using tag names, #id, .class, *, descendant
(space), child (>) and comma alternation. Several queries are concatenated,
each free to start anywhere after the previous one.
`,
}

func runSelect(env *cmdline.Env, args []string) error {
	if len(args) == 0 {
		return env.UsageErrorf("select: at least one query is required")
	}

	config := arraymatcher.DefaultConfig()
	config.Selector.TagField = flagTagField
	config.Selector.IDField = flagIDField
	config.Selector.ClassField = flagClassField

	parts := make([]any, len(args))
	for i, arg := range args {
		parts[i] = arg
	}
	s, err := arraymatcher.QuerySelectorWithConfig(parts, config)
	if err != nil {
		return err
	}
	vlog.Infof("query %q compiled", strings.Join(args, " "))

	return filter(env, func(line string) (bool, error) {
		var objects []any
		if err := json.Unmarshal([]byte(line), &objects); err != nil {
			return false, fmt.Errorf("want a JSON array of objects: %w", err)
		}
		return s.Match(objects), nil
	})
}
