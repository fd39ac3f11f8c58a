// cmd/bitset/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"bitset/cmd/bitset/commands"
)

const version = "1.0.0"

var buildDate = time.Now().Format("2006-01-02")

// commandAliases lets short, frequently-typed letters stand in for a full
// subcommand name.
var commandAliases = map[string]string{
	"u": "union",
	"i": "intersect",
	"d": "difference",
	"x": "symdiff",
	"s": "stat",
	"r": "repl",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a single invocation and returns the process exit code.
// Factored out of main so testscript can run the CLI from the test binary
// (see main_test.go).
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
		args[0] = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		if len(args) > 1 {
			showCommandHelp(args[1])
		} else {
			showUsage()
		}
		return 0
	}

	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		showVersion()
		return 0
	}

	var err error
	switch cmd {
	case "create":
		err = commands.CreateCommand(args[1:])
	case "dump":
		err = commands.DumpCommand(args[1:])
	case "load":
		err = commands.LoadCommand(args[1:])
	case "union", "intersect", "difference", "symdiff":
		err = commands.AlgebraCommand(cmd, args[1:])
	case "stat":
		err = commands.StatCommand(args[1:])
	case "repl":
		err = commands.ReplCommand(args[1:])
	case "serve":
		err = commands.ServeCommand(args[1:])
	case "store":
		err = commands.StoreCommand(args[1:])
	default:
		suggestCommand(cmd)
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bitset: %v\n", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Printf(`bitset %s (%s)

A command-line tool for the bitset library: dense bit-array sets of
non-negative integers with finite/cofinite duality.

Usage:
  bitset <command> [arguments]

Commands:
  create <name> <n...>        create a bitmap from a list of integers
  dump <n...>                 print the fastdump bytes (hex) for a list of integers
  load <file>                 load a fastdump file and print its members
  union <a> <b>               union of two fastdump files (aliases: u)
  intersect <a> <b>           intersection of two fastdump files (aliases: i)
  difference <a> <b>          difference of two fastdump files (aliases: d)
  symdiff <a> <b>             symmetric difference of two fastdump files (aliases: x)
  stat <file>                 human-readable size/compression summary (aliases: s)
  repl                        start an interactive session (aliases: r)
  serve <addr>                start the websocket algebra service
  store <dialect> <dsn> <subcommand>  save/load/list/delete named bitmaps in a SQL store

  help [command]               show this message, or help for one command
  version                       show version information

Run 'bitset help <command>' for details on a specific command.
`, version, buildDate)
}

func showVersion() {
	fmt.Printf("bitset version %s (built %s)\n", version, buildDate)
}

func showCommandHelp(command string) {
	if alias, ok := commandAliases[command]; ok {
		command = alias
	}
	help := map[string]string{
		"create":     "create <name> <n...>\n  Build a bitmap from the given non-negative integers and print its members.",
		"dump":       "dump <n...>\n  Build a bitmap from the given integers and print its fastdump bytes as hex.",
		"load":       "load <file>\n  Load a fastdump file and print its finite members.",
		"union":      "union <a.dump> <b.dump>\n  Print the union of two fastdump files.",
		"intersect":  "intersect <a.dump> <b.dump>\n  Print the intersection of two fastdump files.",
		"difference": "difference <a.dump> <b.dump>\n  Print the difference (a - b) of two fastdump files.",
		"symdiff":    "symdiff <a.dump> <b.dump>\n  Print the symmetric difference of two fastdump files.",
		"stat":       "stat <file>\n  Print a human-readable size and compression summary for a fastdump file.",
		"repl":       "repl\n  Start an interactive session for creating and combining named bitmaps.",
		"serve":      "serve <addr>\n  Start the websocket algebra service listening on addr.",
		"store":      "store <dialect> <dsn> save|load|list|delete ...\n  Persist named bitmaps to a SQL backend (dialect: sqlite, sqlite3-cgo, mysql, postgres, sqlserver).\n  Pass \"-\" for <dsn> to read the connection string from BITSET_DB_DSN instead.",
	}
	if text, ok := help[command]; ok {
		fmt.Println(text)
		return
	}
	fmt.Printf("No help available for %q\n", command)
}

func suggestCommand(cmd string) {
	known := []string{"create", "dump", "load", "union", "intersect", "difference", "symdiff", "stat", "repl", "serve", "store", "help", "version"}
	fmt.Fprintf(os.Stderr, "bitset: unknown command %q\n", cmd)
	best := ""
	bestDist := -1
	for _, k := range known {
		dist := levenshteinDistance(cmd, k)
		if bestDist == -1 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	if bestDist >= 0 && bestDist <= 3 {
		fmt.Fprintf(os.Stderr, "did you mean %q?\n", best)
	}
	fmt.Fprintln(os.Stderr, "run 'bitset help' for a list of commands")
}

func levenshteinDistance(a, b string) int {
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
