package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/JuanPerez-MrV/CalcBranch/internal/calc"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
)

const help = `Type an expression and press Enter. Accepted: 0-9 . + - * / ^ ( ) √ π ANS
A line starting with an operator continues from the previous result.
Commands: clear, help, quit`

var treeDump = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// repl feeds input lines to a calculator session. The readline listener
// previews from its own goroutine, so mu guards session.
type repl struct {
	mu       sync.Mutex
	session  *calc.Session
	out      io.Writer
	log      zerolog.Logger
	showTree bool
}

// handle processes one line. It reports false when the user wants to quit.
func (r *repl) handle(line string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	line = strings.TrimSpace(line)
	switch line {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprintln(r.out, help)
		return true
	case "clear", "c":
		r.session.Clear()
		r.print()
		return true
	case "":
		return true
	}

	syms, ok := calc.SplitInput(line)
	if !ok {
		fmt.Fprintln(r.out, "invalid input:", line)
		return true
	}
	feed(r.session, syms)
	if r.showTree {
		r.dumpTree(r.session.Text())
	}
	if err := r.session.Evaluate(); err != nil {
		r.log.Info().Err(err).Msg("evaluation failed")
	}
	r.print()
	return true
}

func (r *repl) print() {
	fmt.Fprintln(r.out, "=", r.session.Display())
}

func (r *repl) dumpTree(expr string) {
	tree, err := calc.BuildTree(calc.TokenizeAnswer(expr, r.session.LastValue()))
	if err != nil {
		fmt.Fprintln(r.out, "tree:", err)
		return
	}
	fmt.Fprint(r.out, treeDump.Sdump(tree))
}

// preview computes what line would evaluate to without changing the session.
// It returns "" when there is nothing sensible to show.
func (r *repl) preview(line string) string {
	syms, ok := calc.SplitInput(line)
	if !ok || len(syms) == 0 {
		return ""
	}
	r.mu.Lock()
	s := *r.session
	r.mu.Unlock()
	feed(&s, syms)
	v, err := calc.Eval(s.Text(), s.LastValue())
	if err != nil {
		return ""
	}
	return calc.FormatNumber(v)
}

// feed appends a line of input symbols. Unless the line starts with an
// operator it replaces a fresh result, ANS included.
func feed(s *calc.Session, syms []string) {
	if s.Fresh() && !strings.ContainsAny(syms[0], "+-*/^") {
		s.Clear()
	}
	for _, sym := range syms {
		s.Append(sym)
	}
}
