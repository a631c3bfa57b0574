// completion/zsh.go
package completion

import (
	"fmt"
	"strings"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/topics"
)

// ZshGenerator emits the hierarchical dialect: one completion function per
// topic node, each offering its immediate children and dispatching on the
// chosen word, either into a child topic's function or into the chosen
// command's inline flag arguments.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, snap Snapshot) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf("#compdef %s\n", programName))

	for _, node := range snap.Tree.Topics() {
		script.WriteString("\n")
		g.writeTopicFunction(&script, programName, snap, node)
	}

	script.WriteString("\n")
	g.writeTopicFunction(&script, programName, snap, snap.Tree.Root)

	script.WriteString(fmt.Sprintf("\n%s\n", functionName(programName, "")))

	return script.String()
}

// candidate is one completion entry a topic function offers: the next path
// segment plus either the topic node or the command record it stands for.
type candidate struct {
	segment     string
	description string
	topic       *topics.Node
	command     *catalog.CommandRecord
}

// candidates lists a node's children: topics first, then terminal commands,
// each group in lexicographic order. An id that is both topic and command
// appears once, as the topic entry; its description falls back to the
// command's when the topic has none.
func candidates(snap Snapshot, node *topics.Node) []candidate {
	var entries []candidate
	for _, child := range node.Topics {
		description := child.Description
		if description == "" {
			for i := range node.Commands {
				if node.Commands[i].ID == child.Name {
					description = node.Commands[i].Description
					break
				}
			}
		}
		entries = append(entries, candidate{
			segment:     lastSegment(child.Name),
			description: description,
			topic:       child,
		})
	}
	for i := range node.Commands {
		if snap.Tree.IsTopic(node.Commands[i].ID) {
			continue
		}
		entries = append(entries, candidate{
			segment:     lastSegment(node.Commands[i].ID),
			description: node.Commands[i].Description,
			command:     &node.Commands[i],
		})
	}
	return entries
}

func (g *ZshGenerator) writeTopicFunction(script *strings.Builder, programName string, snap Snapshot, node *topics.Node) {
	fmt.Fprintf(script, "%s() {\n", functionName(programName, node.Name))

	entries := candidates(snap, node)
	if len(entries) == 0 {
		script.WriteString(`  _arguments -S \
    "*: :_files"
}
`)
		return
	}

	script.WriteString(`  local context state state_descr line
  typeset -A opt_args

  _arguments -C "1: :->cmds" "*::arg:->args"

  case "$state" in
    cmds)
      _values "completions" \
`)

	values := make([]string, len(entries))
	for i, entry := range entries {
		values[i] = fmt.Sprintf(`        "%s[%s]"`, entry.segment, entry.description)
	}
	script.WriteString(strings.Join(values, " \\\n"))

	script.WriteString(`
      ;;
    args)
      case $line[1] in
`)

	for _, entry := range entries {
		fmt.Fprintf(script, "        %s)\n", entry.segment)
		if entry.topic != nil {
			fmt.Fprintf(script, "          %s\n", functionName(programName, entry.topic.Name))
		} else {
			script.WriteString("          _arguments -S \\\n")
			arguments := zshFlagArguments(entry.command.Flags)
			for i, argument := range arguments {
				script.WriteString("            " + argument)
				if i < len(arguments)-1 {
					script.WriteString(" \\")
				}
				script.WriteString("\n")
			}
		}
		script.WriteString("          ;;\n")
	}

	script.WriteString(`      esac
      ;;
  esac
}
`)
}
