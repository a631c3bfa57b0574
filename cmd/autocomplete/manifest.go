package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/rsuarezmule/plugin-autocomplete/catalog"
)

// Manifest is the on-disk form of the host framework's command metadata: the
// program's invocation name, its topic separator setting, and the plugin
// command lists.
type Manifest struct {
	Program        string           `yaml:"program"`
	TopicSeparator string           `yaml:"topicSeparator"`
	Plugins        []catalog.Plugin `yaml:"plugins"`
}

func loadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if manifest.Program == "" {
		return Manifest{}, fmt.Errorf("manifest has no program name")
	}
	if manifest.TopicSeparator == "" {
		manifest.TopicSeparator = ":"
	}
	return manifest, nil
}

// structural reports whether the manifest's topic separator carries
// hierarchy. A plain space means command ids have no nesting to express, so
// only the flat dialect applies.
func (m Manifest) structural() bool {
	return m.TopicSeparator != " "
}

func addManifestFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVarP(path, "manifest", "m", "manifest.yaml", "path to the command manifest")
}
