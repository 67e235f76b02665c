package main

import (
	"gioui.org/io/key"
	"github.com/JuanPerez-MrV/CalcBranch/internal/calc"
)

const (
	cmdInput calcCmd = iota
	cmdEval
	cmdClear
	cmdRubout
)

type calcCmd int

// command is the action behind a button or key.
type command struct {
	cmd   calcCmd
	input string // for cmdInput
}

func input(sym string) command { return command{cmd: cmdInput, input: sym} }

var (
	evalCmd   = command{cmd: cmdEval}
	clearCmd  = command{cmd: cmdClear}
	ruboutCmd = command{cmd: cmdRubout}
)

// String gives the button label.
func (c command) String() string {
	switch c.cmd {
	case cmdInput:
		return c.input
	case cmdEval:
		return "="
	case cmdClear:
		return "C"
	case cmdRubout:
		return "⌫"
	default:
		panic("unknown command")
	}
}

// run applies the command to the session.
func (c command) run(s *calc.Session) error {
	switch c.cmd {
	case cmdInput:
		s.Append(c.input)
	case cmdEval:
		return s.Evaluate()
	case cmdClear:
		s.Clear()
	case cmdRubout:
		s.DeleteLast()
	default:
		panic("unknown command")
	}
	return nil
}

// keyFilter selects the key events delivered to the calculator. Every name
// keyCommand maps must be in it. key.Set splits a chord at its last '-', so
// the set cannot name the minus key; editCommand picks it up from text input.
const keyFilter = "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,^,(,),=,A,C,P,R,⌤,⏎,⌫,⌦,⎋]"

// keyCommand maps a key press to a command.
func keyCommand(e key.Event) (command, bool) {
	if e.State == key.Release {
		return command{}, false
	}
	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".",
		"+", "*", "/", "^", "(", ")":
		return input(e.Name), true
	case "A":
		return input(calc.InputAnswer), true
	case "R":
		return input(calc.InputSqrt), true
	case "P":
		return input(calc.InputPi), true
	case "=", key.NameEnter, key.NameReturn:
		return evalCmd, true
	case key.NameDeleteBackward, key.NameDeleteForward:
		return ruboutCmd, true
	case "C", key.NameEscape:
		return clearCmd, true
	}
	return command{}, false
}

// editCommand maps text input to a command. Only the minus sign is taken
// from here, everything else arrives as key events.
func editCommand(e key.EditEvent) (command, bool) {
	if e.Text == "-" {
		return input("-"), true
	}
	return command{}, false
}
