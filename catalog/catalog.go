// Package catalog flattens a CLI framework's plugin metadata into the
// immutable command records the completion generators consume. All help text
// is sanitized here, exactly once; the generators downstream embed it
// verbatim.
package catalog

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rsuarezmule/plugin-autocomplete/types/orderedmap"
)

// FlagType distinguishes presence-only flags from flags that take a value.
type FlagType string

const (
	FlagBoolean FlagType = "boolean"
	FlagOption  FlagType = "option"
)

// Flag is the host framework's description of one command flag.
type Flag struct {
	Name        string   `yaml:"name"`
	Char        string   `yaml:"char"`
	Type        FlagType `yaml:"type"`
	Multiple    bool     `yaml:"multiple"`
	Hidden      bool     `yaml:"hidden"`
	Options     []string `yaml:"options"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
}

// Command is the host framework's description of one runnable command.
type Command struct {
	ID          string          `yaml:"id"`
	Summary     string          `yaml:"summary"`
	Description string          `yaml:"description"`
	Hidden      bool            `yaml:"hidden"`
	Aliases     []string        `yaml:"aliases"`
	Flags       map[string]Flag `yaml:"flags"`
}

// Topic is a declared grouping of commands sharing an id prefix.
type Topic struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Plugin is one unit of the host framework's command surface.
type Plugin struct {
	Name     string    `yaml:"name"`
	Topics   []Topic   `yaml:"topics"`
	Commands []Command `yaml:"commands"`
}

// FlagSpec is a sanitized, emission-ready flag. Description already went
// through Sanitize.
type FlagSpec struct {
	Name        string
	Char        string
	Type        FlagType
	Multiple    bool
	Hidden      bool
	Options     []string
	Description string
}

// CommandRecord is one completion candidate. Alias records share the Flags
// map of their primary record; none of it is mutated after Build returns.
type CommandRecord struct {
	ID          string
	Description string
	Flags       *orderedmap.OrderedMap[string, FlagSpec]
}

// Catalog is the full snapshot one generation run works from. It is built
// once per run and passed explicitly to every emitter.
type Catalog struct {
	Commands []CommandRecord // sorted by ID
	Topics   []Topic         // sanitized descriptions, sorted by Name
}

// Build flattens plugins into a Catalog. Hidden commands are dropped,
// aliases fan out into records of their own, and a command whose metadata
// cannot be extracted is logged and skipped so one bad command never takes
// down the whole run.
func Build(plugins []Plugin, logger *zap.Logger) Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	var cat Catalog
	seenTopics := make(map[string]bool)
	for _, plugin := range plugins {
		for _, topic := range plugin.Topics {
			if topic.Name == "" || seenTopics[topic.Name] {
				continue
			}
			seenTopics[topic.Name] = true
			cat.Topics = append(cat.Topics, Topic{
				Name:        topic.Name,
				Description: Sanitize(topic.Description),
			})
		}
		for _, command := range plugin.Commands {
			if command.Hidden {
				continue
			}
			record, err := extract(command)
			if err != nil {
				logger.Warn("skipping command with unusable metadata",
					zap.String("plugin", plugin.Name),
					zap.String("id", command.ID),
					zap.Error(err))
				continue
			}
			cat.Commands = append(cat.Commands, record)
			for _, alias := range command.Aliases {
				if alias == "" || alias == command.ID {
					continue
				}
				cat.Commands = append(cat.Commands, CommandRecord{
					ID:          alias,
					Description: record.Description,
					Flags:       record.Flags,
				})
			}
		}
	}

	sort.Slice(cat.Commands, func(i, j int) bool { return cat.Commands[i].ID < cat.Commands[j].ID })
	sort.Slice(cat.Topics, func(i, j int) bool { return cat.Topics[i].Name < cat.Topics[j].Name })

	return cat
}

// extract validates one command and produces its record. Flags are stored in
// lexicographic name order so every emitter sees them the same way.
func extract(command Command) (CommandRecord, error) {
	if command.ID == "" {
		return CommandRecord{}, fmt.Errorf("command has no id")
	}

	description := command.Summary
	if description == "" {
		description = command.Description
	}

	record := CommandRecord{
		ID:          command.ID,
		Description: Sanitize(description),
		Flags:       orderedmap.NewOrderedMap[string, FlagSpec](),
	}

	names := make([]string, 0, len(command.Flags))
	for name := range command.Flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := command.Flags[name]
		if flag.Name == "" {
			flag.Name = name
		}
		if flag.Char != "" && utf8.RuneCountInString(flag.Char) != 1 {
			return CommandRecord{}, fmt.Errorf("flag %q has short form %q, want a single character", flag.Name, flag.Char)
		}
		if flag.Type == "" {
			flag.Type = FlagBoolean
		}
		if flag.Type != FlagBoolean && flag.Type != FlagOption {
			return CommandRecord{}, fmt.Errorf("flag %q has unknown type %q", flag.Name, flag.Type)
		}
		summary := flag.Summary
		if summary == "" {
			summary = flag.Description
		}
		record.Flags.Set(flag.Name, FlagSpec{
			Name:        flag.Name,
			Char:        flag.Char,
			Type:        flag.Type,
			Multiple:    flag.Multiple,
			Hidden:      flag.Hidden,
			Options:     flag.Options,
			Description: Sanitize(summary),
		})
	}

	return record, nil
}
