package calc

import "fmt"

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

// Op is a binary operator.
type Op byte

func (op Op) String() string {
	return string(rune(op))
}

// precedence gives the binding strength of op. Unknown operators have zero.
func (op Op) precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

// isOp tells whether c is one of the operator symbols.
func isOp(c byte) bool {
	switch Op(c) {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return true
	}
	return false
}

// Token is a lexical unit of an expression. The concrete type is one of
// Number, Operator, LeftParen or RightParen.
type Token interface {
	fmt.Stringer
	token()
}

type (
	Number     float64
	Operator   Op
	LeftParen  struct{}
	RightParen struct{}
)

func (Number) token()     {}
func (Operator) token()   {}
func (LeftParen) token()  {}
func (RightParen) token() {}

func (n Number) String() string   { return FormatNumber(float64(n)) }
func (o Operator) String() string { return Op(o).String() }
func (LeftParen) String() string  { return "(" }
func (RightParen) String() string { return ")" }
