// completion/setup.go
package completion

import (
	"fmt"
	"strings"
)

// BashSetupScript returns the snippet a user's profile evals to load the
// generated bash completion function from functionPath.
func BashSetupScript(programName, functionPath string) string {
	envVar := envVarName(programName) + "_AC_BASH_COMPFUNC_PATH"
	return fmt.Sprintf("%[1]s=%[2]s && test -f \"$%[1]s\" && source \"$%[1]s\";\n", envVar, functionPath)
}

// ZshSetupScript returns the snippet a user's profile evals to put the
// generated zsh function directory on $fpath and (re)initialize completion.
func ZshSetupScript(functionsDir string) string {
	return fmt.Sprintf("fpath=(\n%s\n$fpath\n);\nautoload -Uz compinit;\ncompinit;\n", functionsDir)
}

func envVarName(programName string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ":", "_", " ", "_", ".", "_").Replace(programName))
}
