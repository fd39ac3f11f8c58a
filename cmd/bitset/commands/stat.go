// cmd/bitset/commands/stat.go
package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"bitset"
	"bitset/internal/humanstats"
)

// StatCommand prints a human-readable footprint summary for a fastdump file.
func StatCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bitset stat <file>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "stat %s", args[0])
	}
	b, err := bitset.NewFromBytes(data)
	if err != nil {
		return errors.Wrapf(err, "stat %s", args[0])
	}
	fmt.Println(humanstats.Summarize(b))
	return nil
}
