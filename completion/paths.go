package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CompletionPaths holds information about completion script locations
type CompletionPaths struct {
	Primary  string // Main completion path
	Fallback string // Alternative path if primary isn't available
	Comment  string // Documentation about the path choice
}

// CompletionFileInfo holds shell-specific naming conventions
type CompletionFileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w",
				path, actualPerm, perm, err)
		}
	}

	return nil
}

func getWindowsCompletionPaths(home, shell string) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
			Comment:  "Git Bash user completions directory",
		}, nil

	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Comment:  "Zsh user completions directory (WSL/Cygwin)",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}

func getDarwinCompletionPaths(home, shell string) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
			Comment:  "User-local bash completions, compatible with bash-completion@2",
		}, nil

	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Comment:  "User-local zsh completions directory",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}

func getLinuxCompletionPaths(home, shell string) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
			Comment:  "XDG-compatible user-local bash completions directory",
		}, nil

	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Comment:  "User-local zsh completions directory",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}

func getCompletionPaths(shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		return getWindowsCompletionPaths(home, shell)
	case "darwin":
		return getDarwinCompletionPaths(home, shell)
	default:
		return getLinuxCompletionPaths(home, shell)
	}
}

func getShellFileConventions(shell string) CompletionFileInfo {
	switch shell {
	case "bash":
		return CompletionFileInfo{
			Prefix:    "", // No prefix needed
			Extension: "", // No extension needed
			Comment:   "Bash completion files are typically just the command name",
		}
	case "zsh":
		return CompletionFileInfo{
			Prefix:    "_", // zsh completions typically start with underscore
			Extension: "",  // No extension needed
			Comment:   "Zsh completion files should start with _ (e.g., _git)",
		}
	default:
		return CompletionFileInfo{}
	}
}
