package completion

import (
	"strings"
	"testing"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
)

func buildSnapshot(t *testing.T, plugins []catalog.Plugin) Snapshot {
	t.Helper()
	return NewSnapshot(catalog.Build(plugins, nil))
}

func TestZshFlagArgument(t *testing.T) {
	tests := []struct {
		name     string
		flag     catalog.FlagSpec
		expected string
	}{
		{
			name:     "boolean with short form groups both spellings",
			flag:     catalog.FlagSpec{Name: "force", Char: "f", Type: catalog.FlagBoolean, Description: "force the deploy"},
			expected: `"(-f --force)"{-f,--force}"[force the deploy]"`,
		},
		{
			name:     "repeatable flag trades the exclusion group for *",
			flag:     catalog.FlagSpec{Name: "tag", Char: "t", Type: catalog.FlagBoolean, Multiple: true, Description: "tag it"},
			expected: `"*"{-t,--tag}"[tag it]"`,
		},
		{
			name:     "option with a fixed value set",
			flag:     catalog.FlagSpec{Name: "env", Type: catalog.FlagOption, Options: []string{"dev", "prod"}, Description: "deployment environment"},
			expected: `"--env[deployment environment]:option:(dev prod)"`,
		},
		{
			name:     "unconstrained option falls back to file completion",
			flag:     catalog.FlagSpec{Name: "file", Type: catalog.FlagOption, Description: "input file"},
			expected: `"--file[input file]:file:_files"`,
		},
		{
			name:     "long-only boolean",
			flag:     catalog.FlagSpec{Name: "json", Type: catalog.FlagBoolean, Description: "output as json"},
			expected: `"--json[output as json]"`,
		},
		{
			name:     "repeatable long-only option",
			flag:     catalog.FlagSpec{Name: "label", Type: catalog.FlagOption, Multiple: true, Description: "attach a label"},
			expected: `"*--label[attach a label]:file:_files"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zshFlagArgument(tt.flag); got != tt.expected {
				t.Errorf("zshFlagArgument() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestZshFlagArgumentsDegradesToFilesOnly(t *testing.T) {
	args := zshFlagArguments(nil)
	if len(args) != 1 || args[0] != `"*: :_files"` {
		t.Errorf("expected the files-only fallback, got %v", args)
	}
}

func TestZshGenerateEndToEnd(t *testing.T) {
	snap := buildSnapshot(t, []catalog.Plugin{{
		Name:   "core",
		Topics: []catalog.Topic{{Name: "org", Description: "Org commands"}},
		Commands: []catalog.Command{
			{ID: "org:list", Summary: "List orgs"},
		},
	}})

	gen := &ZshGenerator{}
	result := gen.Generate("myprog", snap)

	expectations := []string{
		"#compdef myprog",
		"_myprog_org() {",
		"_myprog() {",
		`"org[Org commands]"`,
		`"list[List orgs]"`,
		`_arguments -C "1: :->cmds" "*::arg:->args"`,
		`_values "completions"`,
		`"*: :_files"`,
	}
	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}

	// The root function dispatches into the generated topic function.
	if !strings.Contains(result, "        org)\n          _myprog_org\n") {
		t.Error("Expected the root function to delegate to _myprog_org")
	}
	// The flagless command completes file paths only.
	if !strings.Contains(result, "        list)\n          _arguments -S \\\n            \"*: :_files\"\n") {
		t.Error("Expected the list branch to degrade to file completion")
	}
	if !strings.HasSuffix(result, "\n_myprog\n") {
		t.Error("Expected the script to end by invoking the root function")
	}
}

func TestZshGenerateCommandFlags(t *testing.T) {
	snap := buildSnapshot(t, []catalog.Plugin{{
		Name: "core",
		Commands: []catalog.Command{{
			ID:      "deploy",
			Summary: "Deploy the app",
			Flags: map[string]catalog.Flag{
				"force":  {Char: "f", Type: catalog.FlagBoolean, Summary: "skip confirmation"},
				"env":    {Type: catalog.FlagOption, Options: []string{"dev", "prod"}, Summary: "target environment"},
				"secret": {Type: catalog.FlagBoolean, Hidden: true, Summary: "do not show"},
			},
		}},
	}})

	gen := &ZshGenerator{}
	result := gen.Generate("myprog", snap)

	expectations := []string{
		`"deploy[Deploy the app]"`,
		`"(-f --force)"{-f,--force}"[skip confirmation]"`,
		`"--env[target environment]:option:(dev prod)"`,
	}
	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}
	if strings.Contains(result, "secret") {
		t.Error("Expected hidden flag to be omitted from the generated script")
	}
}

func TestZshGenerateSurfacesAliases(t *testing.T) {
	snap := buildSnapshot(t, []catalog.Plugin{{
		Name: "core",
		Commands: []catalog.Command{
			{ID: "deploy", Summary: "Deploy the app", Aliases: []string{"dep"}},
		},
	}})

	gen := &ZshGenerator{}
	result := gen.Generate("myprog", snap)

	for _, expected := range []string{`"dep[Deploy the app]"`, `"deploy[Deploy the app]"`} {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected completion to contain %q", expected)
		}
	}
}

func TestZshGenerateExcludesHiddenCommands(t *testing.T) {
	snap := buildSnapshot(t, []catalog.Plugin{{
		Name: "core",
		Commands: []catalog.Command{
			{ID: "visible", Summary: "shown"},
			{ID: "internal:debug", Summary: "not shown", Hidden: true},
		},
	}})

	gen := &ZshGenerator{}
	result := gen.Generate("myprog", snap)

	if strings.Contains(result, "internal") || strings.Contains(result, "debug") {
		t.Error("Expected hidden command to be absent from the generated script")
	}
}

func TestZshGenerateIsDeterministic(t *testing.T) {
	snap := buildSnapshot(t, []catalog.Plugin{{
		Name:   "core",
		Topics: []catalog.Topic{{Name: "org", Description: "Org commands"}},
		Commands: []catalog.Command{
			{ID: "org:list", Summary: "List orgs"},
			{ID: "org:create", Summary: "Create an org", Flags: map[string]catalog.Flag{
				"name": {Char: "n", Type: catalog.FlagOption, Summary: "org name"},
			}},
			{ID: "deploy", Summary: "Deploy", Aliases: []string{"dep"}},
		},
	}})

	gen := &ZshGenerator{}
	first := gen.Generate("myprog", snap)
	second := gen.Generate("myprog", snap)

	if first != second {
		t.Error("Expected two generations from one snapshot to be byte-identical")
	}
}
