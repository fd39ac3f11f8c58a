// cmd/bitset/commands/algebra.go
package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"bitset"
)

// CreateCommand builds a bitmap from a list of integers and prints its
// members.
func CreateCommand(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: bitset create <name> <n...>")
	}
	name := args[0]
	xs, err := parseInts(args[1:])
	if err != nil {
		return errors.Wrap(err, "create")
	}
	b, err := bitset.NewFromInts(xs)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	fmt.Printf("%s = %v\n", name, b)
	return nil
}

// DumpCommand builds a bitmap from a list of integers and prints its
// fastdump bytes as hex.
func DumpCommand(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: bitset dump <n...>")
	}
	xs, err := parseInts(args)
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	b, err := bitset.NewFromInts(xs)
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	fmt.Printf("%x\n", b.FastDump())
	return nil
}

// LoadCommand loads a fastdump file and prints its finite members.
func LoadCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bitset load <file>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "load %s", args[0])
	}
	b, err := bitset.NewFromBytes(data)
	if err != nil {
		return errors.Wrapf(err, "load %s", args[0])
	}
	fmt.Println(b.ToSlice())
	return nil
}

// AlgebraCommand loads two fastdump files and prints the result of
// applying op to them.
func AlgebraCommand(op string, args []string) error {
	if len(args) != 2 {
		return errors.Errorf("usage: bitset %s <a.dump> <b.dump>", op)
	}
	a, err := loadFile(args[0])
	if err != nil {
		return err
	}
	b, err := loadFile(args[1])
	if err != nil {
		return err
	}

	var result *bitset.Bitmap
	switch op {
	case "union":
		result, err = a.Union(b)
	case "intersect":
		result, err = a.Intersect(b)
	case "difference":
		result, err = a.Difference(b)
	case "symdiff":
		result, err = a.SymmetricDifference(b)
	}
	if err != nil {
		return errors.Wrapf(err, "%s", op)
	}
	fmt.Println(result.ToSlice())
	return nil
}

func loadFile(path string) (*bitset.Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	b, err := bitset.NewFromBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return b, nil
}

func parseInts(args []string) ([]int, error) {
	xs := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "%q is not an integer", a)
		}
		xs[i] = n
	}
	return xs, nil
}
