// Package repl is an interactive shell for creating, mutating, combining
// and inspecting named Bitmaps, built around a bufio.Scanner-driven
// read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"bitset"
	"bitset/internal/humanstats"
)

// REPL holds the named Bitmaps created during a session.
type REPL struct {
	sets map[string]*bitset.Bitmap
	out  io.Writer
}

// New returns a REPL with no sets defined yet.
func New(out io.Writer) *REPL {
	return &REPL{sets: make(map[string]*bitset.Bitmap), out: out}
}

// Run reads commands from in until EOF or "exit", writing results and
// errors to the REPL's output. The interactive ">>> " prompt is printed only
// when isTerminal is true; RunStdio sets it with go-isatty.
func Run(in io.Reader, out io.Writer, isTerminal bool) {
	r := New(out)
	scanner := bufio.NewScanner(in)
	for {
		if isTerminal {
			fmt.Fprint(out, ">>> ")
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		if err := r.Eval(line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// RunStdio runs Run against os.Stdin/os.Stdout, auto-detecting whether
// stdin is a terminal via go-isatty.
func RunStdio(stdinFd uintptr, in io.Reader, out io.Writer) {
	Run(in, out, isatty.IsTerminal(stdinFd))
}

// Eval executes a single REPL command line.
func (r *REPL) Eval(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		return r.cmdNew(args)
	case "add":
		return r.cmdMutate(args, (*bitset.Bitmap).Add)
	case "discard":
		if len(args) != 2 {
			return fmt.Errorf("usage: discard <set> <n>")
		}
		b, n, err := r.setAndInt(args[0], args[1])
		if err != nil {
			return err
		}
		b.Discard(n)
		return nil
	case "remove":
		return r.cmdMutate(args, (*bitset.Bitmap).Remove)
	case "len":
		return r.cmdLen(args)
	case "members":
		return r.cmdMembers(args)
	case "union", "intersect", "difference", "symdiff":
		return r.cmdAlgebra(cmd, args)
	case "stat":
		return r.cmdStat(args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (r *REPL) cmdNew(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: new <name>")
	}
	r.sets[args[0]] = bitset.New()
	return nil
}

func (r *REPL) cmdMutate(args []string, apply func(*bitset.Bitmap, int) error) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: <cmd> <set> <n>")
	}
	b, n, err := r.setAndInt(args[0], args[1])
	if err != nil {
		return err
	}
	return apply(b, n)
}

func (r *REPL) cmdLen(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: len <set>")
	}
	b, err := r.get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, b.Len())
	return nil
}

func (r *REPL) cmdMembers(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: members <set>")
	}
	b, err := r.get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, b.ToSlice())
	return nil
}

func (r *REPL) cmdAlgebra(op string, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s <dest> <left> <right>", op)
	}
	left, err := r.get(args[1])
	if err != nil {
		return err
	}
	right, err := r.get(args[2])
	if err != nil {
		return err
	}

	var result *bitset.Bitmap
	switch op {
	case "union":
		result, err = left.Union(right)
	case "intersect":
		result, err = left.Intersect(right)
	case "difference":
		result, err = left.Difference(right)
	case "symdiff":
		result, err = left.SymmetricDifference(right)
	}
	if err != nil {
		return err
	}
	r.sets[args[0]] = result
	return nil
}

func (r *REPL) cmdStat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: stat <set>")
	}
	b, err := r.get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, humanstats.Summarize(b))
	return nil
}

func (r *REPL) get(name string) (*bitset.Bitmap, error) {
	b, ok := r.sets[name]
	if !ok {
		return nil, fmt.Errorf("no such set %q (use 'new %s' first)", name, name)
	}
	return b, nil
}

func (r *REPL) setAndInt(name, numeral string) (*bitset.Bitmap, int, error) {
	b, err := r.get(name)
	if err != nil {
		return nil, 0, err
	}
	n, err := strconv.Atoi(numeral)
	if err != nil {
		return nil, 0, fmt.Errorf("%q is not an integer", numeral)
	}
	return b, n, nil
}
