package cliutil

import (
	"fmt"
	"strings"
)

// UnknownCommandError reports an unrecognized command along with the valid choices.
func UnknownCommandError(got string, valid []string) error {
	return fmt.Errorf("unknown command: %q (valid: %s)", got, strings.Join(valid, ", "))
}
