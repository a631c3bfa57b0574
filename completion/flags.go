// completion/flags.go
package completion

import (
	"fmt"
	"strings"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/types/orderedmap"
)

// zshFlagArguments renders the _arguments spec lines for one command. Hidden
// flags never appear. The trailing "*: :_files" line keeps positional
// arguments completing as file paths from any position; with no visible
// flags the fragment degrades to that line alone.
func zshFlagArguments(flags *orderedmap.OrderedMap[string, catalog.FlagSpec]) []string {
	var args []string
	if flags != nil {
		for pair := flags.Front(); pair != nil; pair = pair.Next() {
			flag := pair.Value()
			if flag.Hidden {
				continue
			}
			args = append(args, zshFlagArgument(flag))
		}
	}
	return append(args, `"*: :_files"`)
}

// zshFlagArgument renders one flag spec.
//
// A flag with a short form groups both spellings as mutually exclusive
// alternatives: "(-f --force)"{-f,--force}"[desc]". A repeatable flag trades
// the exclusion group for "*" so the shell accepts it more than once. Option
// flags complete their value from the declared literal set, or fall back to
// file paths when the value is unconstrained; boolean flags complete no
// value at all.
func zshFlagArgument(flag catalog.FlagSpec) string {
	long := "--" + flag.Name

	var action string
	if flag.Type == catalog.FlagOption {
		if len(flag.Options) > 0 {
			action = fmt.Sprintf(":option:(%s)", strings.Join(flag.Options, " "))
		} else {
			action = ":file:_files"
		}
	}

	if flag.Char != "" {
		group := fmt.Sprintf("(-%s %s)", flag.Char, long)
		if flag.Multiple {
			group = "*"
		}
		return fmt.Sprintf(`"%s"{-%s,%s}"[%s]%s"`, group, flag.Char, long, flag.Description, action)
	}

	prefix := ""
	if flag.Multiple {
		prefix = "*"
	}
	return fmt.Sprintf(`"%s%s[%s]%s"`, prefix, long, flag.Description, action)
}

// longFlagNames is the coarse form the space-separated dialect uses: visible
// long names only, no short forms, no value hints.
func longFlagNames(flags *orderedmap.OrderedMap[string, catalog.FlagSpec]) []string {
	var names []string
	if flags == nil {
		return names
	}
	for pair := flags.Front(); pair != nil; pair = pair.Next() {
		flag := pair.Value()
		if flag.Hidden {
			continue
		}
		names = append(names, "--"+flag.Name)
	}
	return names
}
