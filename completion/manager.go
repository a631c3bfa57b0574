package completion

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Artifact is one generated file, fully rendered before anything touches the
// filesystem.
type Artifact struct {
	Shell    string
	Path     string
	Contents string
}

// Manager generates the four completion artifacts (a function file and a
// setup script per shell) from one catalog snapshot and writes them
// all-or-nothing: generation is pure and happens entirely in memory first,
// and the first write error aborts the run.
type Manager struct {
	ProgramName string
	Shells      []string

	paths  map[string]CompletionPaths
	logger *zap.Logger
}

// NewManager resolves install paths for both supported shells.
func NewManager(programName string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		ProgramName: filepath.Base(programName),
		Shells:      []string{"bash", "zsh"},
		paths:       make(map[string]CompletionPaths),
		logger:      logger,
	}
	for _, shell := range m.Shells {
		paths, err := getCompletionPaths(shell)
		if err != nil {
			return nil, fmt.Errorf("failed to get completion paths: %w", err)
		}
		m.paths[shell] = paths
	}
	return m, nil
}

// SetPaths overrides the resolved install directory for one shell.
func (m *Manager) SetPaths(shell string, paths CompletionPaths) {
	m.paths[shell] = paths
}

// Artifacts renders everything the run will write. Pure: the same snapshot
// always yields byte-identical contents.
func (m *Manager) Artifacts(snap Snapshot) []Artifact {
	var artifacts []Artifact
	for _, shell := range m.Shells {
		paths := m.paths[shell]
		conventions := getShellFileConventions(shell)
		functionPath := filepath.Join(paths.Primary, conventions.Prefix+m.ProgramName+conventions.Extension)

		artifacts = append(artifacts, Artifact{
			Shell:    shell,
			Path:     functionPath,
			Contents: GetGenerator(shell).Generate(m.ProgramName, snap),
		})

		var setup string
		switch shell {
		case "bash":
			setup = BashSetupScript(m.ProgramName, functionPath)
		case "zsh":
			setup = ZshSetupScript(paths.Primary)
		}
		artifacts = append(artifacts, Artifact{
			Shell:    shell,
			Path:     filepath.Join(paths.Primary, m.ProgramName+"-setup."+shell),
			Contents: setup,
		})
	}
	return artifacts
}

// Write renders and persists all artifacts. The first failure aborts with no
// reconciliation; completion scripts are all-or-nothing for one run and the
// run is safe to repeat.
func (m *Manager) Write(snap Snapshot) error {
	artifacts := m.Artifacts(snap)

	for _, shell := range m.Shells {
		if err := m.ensureCompletionPath(shell); err != nil {
			return err
		}
	}

	for _, artifact := range artifacts {
		if err := os.WriteFile(artifact.Path, []byte(artifact.Contents), 0644); err != nil {
			return fmt.Errorf("failed to write completion file: %w", err)
		}
		if err := ensurePermission(artifact.Path, 0644); err != nil {
			return err
		}
		m.logger.Info("wrote completion artifact",
			zap.String("shell", artifact.Shell),
			zap.String("path", artifact.Path))
	}

	return nil
}

func (m *Manager) ensureCompletionPath(shell string) error {
	paths := m.paths[shell]
	perm := os.FileMode(0755)

	err := os.MkdirAll(paths.Primary, perm)
	if err != nil {
		return fmt.Errorf("failed to create primary completion directory: %w", err)
	}

	err = ensurePermission(paths.Primary, perm)
	if err == nil {
		return nil
	}

	if paths.Fallback != "" {
		err = os.MkdirAll(paths.Fallback, perm)
		if err != nil {
			return fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return ensurePermission(paths.Fallback, perm)
	}

	return fmt.Errorf("failed to create completion directories: %w", err)
}
