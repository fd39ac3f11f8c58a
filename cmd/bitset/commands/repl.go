// cmd/bitset/commands/repl.go
package commands

import (
	"os"

	"github.com/pkg/errors"

	"bitset/internal/repl"
)

// ReplCommand starts an interactive session against stdin/stdout.
func ReplCommand(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: bitset repl")
	}
	repl.RunStdio(os.Stdin.Fd(), os.Stdin, os.Stdout)
	return nil
}
