package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb   string
		rad, echo, vrb bool
		ans            float64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&rad, "rad", false, "use radians instead of degrees")
	flag.BoolVar(&echo, "echo", false, "print each equation as typed")
	flag.BoolVar(&vrb, "v", false, "trace evaluation to stderr")
	flag.Float64Var(&ans, "ans", 0, "initial value of Ans")
	flag.Parse()

	var opts []calc.SolveOption
	if vrb {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, calc.Trace(slog.New(h)))
	}
	r := runner{
		sess: calc.NewSession(opts...),
		verb: verb + "\n",
		echo: echo,
		out:  os.Stdout,
	}
	if rad {
		r.sess.ToggleDegrees()
	}
	r.sess.SetAns(ans)

	if flag.NArg() == 0 && (inname == "" || inname == "-") && readline.IsTerminal(int(os.Stdin.Fd())) {
		if err := r.repl(); err != nil {
			log.Fatal(err)
		}
		return
	}

	var lines []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s := bufio.NewScanner(f)
		for s.Scan() {
			lines = append(lines, s.Text())
		}
		if err := s.Err(); err != nil {
			log.Fatal(err)
		}
	}
	lines = append(lines, flag.Args()...)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := r.line(line); err != nil {
			log.Fatal(err)
		}
	}
}

// runner feeds lines of input to a calculator session.
type runner struct {
	sess *calc.Session
	verb string
	echo bool
	out  io.Writer
}

// line types a line into the session and evaluates it. A line that starts
// with an operator continues from the previous answer. Errors from unknown
// text are returned; evaluation errors are printed.
func (r *runner) line(line string) error {
	items, err := calc.Tokenize(strings.NewReader(line))
	if err != nil {
		return err
	}
	if r.sess.Err() != nil {
		r.sess.Clear()
	}
	for _, it := range items {
		r.sess.Push(it)
	}
	r.evaluate()
	return nil
}

func (r *runner) evaluate() {
	eq := r.sess.Equation()
	v, err := r.sess.Evaluate()
	if r.echo {
		fmt.Fprintf(r.out, "%v = ", eq)
	}
	if err != nil {
		fmt.Fprintln(r.out, "Error:", err)
		return
	}
	fmt.Fprintf(r.out, r.verb, v)
}

// command runs a REPL command. The result is false if the REPL should exit.
func (r *runner) command(cmd string) bool {
	switch cmd {
	case ":q", ":quit":
		return false
	case ":deg":
		if !r.sess.Degrees() {
			r.sess.ToggleDegrees()
		}
	case ":rad":
		if r.sess.Degrees() {
			r.sess.ToggleDegrees()
		}
	case ":rnd":
		r.sess.Clear()
		r.sess.Random(rand.Float64())
		r.evaluate()
	case ":hist":
		for _, e := range r.sess.History().Entries() {
			fmt.Fprintf(r.out, "%v = "+r.verb, e.Equation, e.Result)
		}
	default:
		fmt.Fprintf(r.out, "unknown command %q\n", cmd)
	}
	return true
}

var commands = []string{":deg", ":rad", ":rnd", ":hist", ":q"}

func (r *runner) repl() error {
	var pc []readline.PrefixCompleterInterface
	for _, w := range append(calc.Words(), commands...) {
		pc = append(pc, readline.PcItem(w))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		AutoComplete:    readline.NewPrefixCompleter(pc...),
		InterruptPrompt: "^C",
		EOFPrompt:       ":q",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":"):
			if !r.command(line) {
				return nil
			}
		default:
			if err := r.line(line); err != nil {
				fmt.Fprintln(r.out, err)
			}
		}
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
