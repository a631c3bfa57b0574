// Package topics derives the command hierarchy from colon-delimited command
// ids. The host framework stores no explicit tree; a name is a topic exactly
// when some other known name extends it by one or more ":"-separated
// segments.
package topics

import (
	"sort"
	"strings"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
	"github.com/rsuarezmule/plugin-autocomplete/types/queue"
)

// Node is one interior point of the hierarchy. Name is the full colon path;
// the synthetic root has an empty Name and Depth 0. Topics and Commands hold
// the immediate children only, each sorted lexicographically by full id.
type Node struct {
	Name        string
	Description string
	Depth       int
	Topics      []*Node
	Commands    []catalog.CommandRecord
}

// Tree indexes every topic node by full path under a synthetic root.
type Tree struct {
	Root  *Node
	nodes map[string]*Node
}

// Build derives the tree from one catalog snapshot. Candidate topics are the
// declared topic names plus every proper prefix of a command or topic id;
// candidates with no descendants are pruned. Children are grouped with a
// single pass over all names keyed by parent path, not by scanning prefixes
// per node.
func Build(cat catalog.Catalog) *Tree {
	descriptions := make(map[string]string, len(cat.Topics))
	candidates := make(map[string]bool)
	known := make(map[string]bool)

	addPrefixes := func(name string) {
		for i, r := range name {
			if r == ':' {
				candidates[name[:i]] = true
				known[name[:i]] = true
			}
		}
	}

	for _, topic := range cat.Topics {
		descriptions[topic.Name] = topic.Description
		candidates[topic.Name] = true
		known[topic.Name] = true
		addPrefixes(topic.Name)
	}
	for _, command := range cat.Commands {
		known[command.ID] = true
		addPrefixes(command.ID)
	}

	// Group every known name under its parent path once, then test each
	// candidate for descendants by looking up its own child bucket.
	childNames := make(map[string][]string)
	for name := range known {
		childNames[parentOf(name)] = append(childNames[parentOf(name)], name)
	}

	// A candidate with a non-empty child bucket has at least one
	// descendant; everything else is a childless topic and is pruned.
	kept := make([]string, 0, len(candidates))
	for name := range candidates {
		if len(childNames[name]) > 0 {
			kept = append(kept, name)
		}
	}
	sort.Strings(kept)

	tree := &Tree{
		Root:  &Node{},
		nodes: make(map[string]*Node, len(kept)),
	}
	tree.nodes[""] = tree.Root
	for _, name := range kept {
		tree.nodes[name] = &Node{
			Name:        name,
			Description: descriptions[name],
			Depth:       depthOf(name),
		}
	}
	for _, name := range kept {
		parent := tree.nodes[parentOf(name)]
		parent.Topics = append(parent.Topics, tree.nodes[name])
	}
	for _, command := range cat.Commands {
		if parent, ok := tree.nodes[parentOf(command.ID)]; ok {
			parent.Commands = append(parent.Commands, command)
		}
	}
	for _, node := range tree.nodes {
		commands := node.Commands
		sort.Slice(commands, func(i, j int) bool { return commands[i].ID < commands[j].ID })
	}

	return tree
}

// Lookup returns the topic node for a full colon path.
func (t *Tree) Lookup(name string) (*Node, bool) {
	node, ok := t.nodes[name]
	return node, ok
}

// IsTopic reports whether name groups deeper commands.
func (t *Tree) IsTopic(name string) bool {
	_, ok := t.nodes[name]
	return ok && name != ""
}

// Walk visits every node breadth-first starting at the root. Children are
// visited in lexicographic order, so the visit sequence is deterministic.
func (t *Tree) Walk(fn func(*Node)) {
	pending := queue.New[*Node]()
	pending.Enqueue(t.Root)
	for pending.Len() > 0 {
		node, _ := pending.Dequeue()
		fn(node)
		for _, child := range node.Topics {
			pending.Enqueue(child)
		}
	}
}

// Topics returns every topic node (the root excluded) in breadth-first
// order.
func (t *Tree) Topics() []*Node {
	var nodes []*Node
	t.Walk(func(n *Node) {
		if n.Name != "" {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

func parentOf(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[:i]
	}
	return ""
}

func depthOf(name string) int {
	return strings.Count(name, ":") + 1
}
