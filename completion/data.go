// completion/data.go
package completion

import (
	"strings"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/topics"
)

// Snapshot is everything a generator needs from one generation run: the
// flattened command records and the topic tree derived from them. Both are
// built once per run and never mutated, so generating twice from the same
// Snapshot yields byte-identical scripts.
type Snapshot struct {
	Commands []catalog.CommandRecord
	Tree     *topics.Tree
}

// NewSnapshot derives the topic tree and pairs it with the catalog.
func NewSnapshot(cat catalog.Catalog) Snapshot {
	return Snapshot{
		Commands: cat.Commands,
		Tree:     topics.Build(cat),
	}
}

// Generator produces the completion-function source text for one shell
// dialect.
type Generator interface {
	Generate(programName string, snap Snapshot) string
}

// GetGenerator returns the generator for a shell, or nil for an unsupported
// one.
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	default:
		return nil
	}
}

// functionName builds the per-node zsh function identifier: the program name
// plus the full colon path joined with underscores. The path keeps generated
// identifiers unique and lets zsh autoload them by file name.
func functionName(programName, topicPath string) string {
	if topicPath == "" {
		return "_" + programName
	}
	return "_" + programName + "_" + strings.ReplaceAll(topicPath, ":", "_")
}

// lastSegment returns the final colon-separated segment of an id.
func lastSegment(id string) string {
	if i := strings.LastIndexByte(id, ':'); i >= 0 {
		return id[i+1:]
	}
	return id
}
