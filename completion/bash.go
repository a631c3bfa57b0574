// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

// BashGenerator emits the space-separated dialect: one static table mapping
// every visible command id to its long flag names, and one generic function
// that looks the current command up in the table. Deliberately coarser than
// the hierarchical dialect; bash treats the whole id as a single word.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, snap Snapshot) string {
	var table strings.Builder
	for _, command := range snap.Commands {
		table.WriteString(command.ID)
		if flags := longFlagNames(command.Flags); len(flags) > 0 {
			table.WriteString(" " + strings.Join(flags, " "))
		}
		table.WriteString("\n")
	}

	return fmt.Sprintf(`#!/usr/bin/env bash

_%[1]s()
{
  local cur="${COMP_WORDS[COMP_CWORD]}" opts IFS=$' \t\n'
  COMPREPLY=()

  local commands="
%[2]s"

  if [[ "$cur" != "-"* ]]; then
    opts=$(printf "%%s" "$commands" | grep -Eo '^[a-zA-Z0-9:_-]+')
  else
    local __COMP_WORDS
    if [[ ${COMP_WORDS[2]} == ":" ]]; then
      # completing a subcommand such as "topic:command"
      __COMP_WORDS=$(printf "%%s" "${COMP_WORDS[@]:1:3}")
    else
      __COMP_WORDS="${COMP_WORDS[@]:1:1}"
    fi
    opts=$(printf "%%s" "$commands" | grep "^${__COMP_WORDS} " | sed -n "s/^${__COMP_WORDS} //p")
  fi
  _get_comp_words_by_ref -n : cur
  COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
  __ltrim_colon_completions "$cur"

  return 0
}

complete -o default -F _%[1]s %[1]s
`, programName, table.String())
}
