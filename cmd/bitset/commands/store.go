// cmd/bitset/commands/store.go
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"bitset"
	"bitset/internal/store"
)

// StoreCommand dispatches "bitset store <dialect> <dsn> <subcommand> [args...]"
// to a SQL-backed named-bitmap store. Passing "-" for <dsn> reads the DSN
// from the BITSET_DB_DSN environment variable instead, so a shell session
// can export one default connection string and elide it from every call.
func StoreCommand(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: bitset store <dialect> <dsn>|- save|load|list|delete ...")
	}
	dialect, dsn, sub, rest := store.Dialect(args[0]), args[1], args[2], args[3:]
	if dsn == "-" {
		dsn = os.Getenv("BITSET_DB_DSN")
		if dsn == "" {
			return errors.New("store: \"-\" given for <dsn> but BITSET_DB_DSN is not set")
		}
	}

	ctx := context.Background()
	st, err := store.Open(ctx, dialect, dsn)
	if err != nil {
		return errors.Wrap(err, "store")
	}
	defer st.Close()

	switch sub {
	case "save":
		if len(rest) < 2 {
			return errors.New("usage: bitset store <dialect> <dsn> save <name> <n...>")
		}
		xs, err := parseInts(rest[1:])
		if err != nil {
			return errors.Wrap(err, "store save")
		}
		b, err := bitset.NewFromInts(xs)
		if err != nil {
			return errors.Wrap(err, "store save")
		}
		return st.Save(ctx, rest[0], b)
	case "load":
		if len(rest) != 1 {
			return errors.New("usage: bitset store <dialect> <dsn> load <name>")
		}
		b, err := st.Load(ctx, rest[0])
		if err != nil {
			return errors.Wrap(err, "store load")
		}
		fmt.Println(b.ToSlice())
		return nil
	case "list":
		names, err := st.List(ctx)
		if err != nil {
			return errors.Wrap(err, "store list")
		}
		for _, n := range names {
			fmt.Fprintln(os.Stdout, n)
		}
		return nil
	case "delete":
		if len(rest) != 1 {
			return errors.New("usage: bitset store <dialect> <dsn> delete <name>")
		}
		return st.Delete(ctx, rest[0])
	default:
		return errors.Errorf("store: unknown subcommand %q", sub)
	}
}
