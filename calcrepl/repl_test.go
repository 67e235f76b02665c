package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/JuanPerez-MrV/CalcBranch/internal/calc"
	"github.com/rs/zerolog"
)

func newTestREPL() (*repl, *bytes.Buffer) {
	var out bytes.Buffer
	r := &repl{session: calc.NewSession(), out: &out, log: zerolog.Nop()}
	return r, &out
}

func TestREPL(t *testing.T) {
	r, out := newTestREPL()
	lines := []struct {
		in, want string
	}{
		{"1 + 2*3", "= 7\n"},
		{"*2", "= 14\n"},
		{"5", "= 5\n"},
		{"ANS^2", "= 25\n"},
		{"√(ANS)", "= 5\n"},
		{"5/0", "= Error\n"},
		{"+1", "= Error\n"},
		{"ANS+1", "= 6\n"},
		{"2^3^2", "= 64\n"},
		{"hello", "invalid input: hello\n"},
		{"clear", "= 0\n"},
		{"", ""},
	}
	for _, line := range lines {
		out.Reset()
		if !r.handle(line.in) {
			t.Fatalf("%q: quit", line.in)
		}
		if out.String() != line.want {
			t.Errorf("%q: got output %q, want %q", line.in, out.String(), line.want)
		}
	}
	if r.handle("quit") {
		t.Fatal("quit not recognized")
	}
}

func TestREPLTree(t *testing.T) {
	r, out := newTestREPL()
	r.showTree = true
	r.handle("1+2*3")
	if !strings.Contains(out.String(), "Op: (calc.Op) 43") || !strings.Contains(out.String(), "Op: (calc.Op) 42") || !strings.HasSuffix(out.String(), "= 7\n") {
		t.Fatalf("wrong output:\n%s", out.String())
	}
	out.Reset()
	r.handle("c")
	r.handle("(")
	if !strings.Contains(out.String(), "tree: malformed expression") {
		t.Fatalf("wrong output:\n%s", out.String())
	}
}

func TestREPLPreview(t *testing.T) {
	r, _ := newTestREPL()
	r.handle("6*7")
	tests := []struct {
		line, want string
	}{
		{"1+1", "2"},
		{"+1", "43"},
		{"ANS/2", "21"},
		{"1+", ""},
		{"x", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := r.preview(test.line); got != test.want {
			t.Errorf("preview(%q) = %q, want %q", test.line, got, test.want)
		}
	}
	// Previewing leaves the session alone.
	if r.session.Display() != "42" || !r.session.Fresh() {
		t.Fatalf("session changed: %+v", r.session)
	}
}

// The readline listener previews while lines are being handled.
func TestREPLPreviewWhileHandling(t *testing.T) {
	r, _ := newTestREPL()
	r.handle("0")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			r.preview("+1")
			r.preview("ANS*2")
		}
	}()
	for i := 0; i < 1000; i++ {
		r.handle("+1")
	}
	wg.Wait()
	if got := r.session.Display(); got != "1000" {
		t.Fatalf("got %q, want 1000", got)
	}
}
