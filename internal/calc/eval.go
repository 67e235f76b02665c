package calc

import (
	"errors"
	"fmt"
	"math"
)

// Evaluation errors. Returned errors wrap one of these; use errors.Is.
var (
	ErrEmptyExpression     = errors.New("empty expression")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNegativeSquareRoot  = errors.New("square root of negative number")
	ErrInvalidResult       = errors.New("invalid result")
	ErrUnknownOperator     = errors.New("unknown operator")
)

// apply computes x op y.
func (op Op) apply(x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case OpPow:
		// An exponent of exactly 0.5 is what square roots expand to.
		if y == 0.5 {
			if x < 0 {
				return 0, fmt.Errorf("%w: √%s", ErrNegativeSquareRoot, FormatNumber(x))
			}
			return math.Sqrt(x), nil
		}
		return math.Pow(x, y), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperator, byte(op))
	}
}

// Evaluate computes the value of the tree rooted at n. The left subtree is
// evaluated before the right one, so the leftmost failure is reported.
func Evaluate(n *Node) (float64, error) {
	if n == nil {
		return 0, ErrEmptyExpression
	}
	if n.IsLeaf() {
		// Digit strings beyond the float64 range lex as ±Inf.
		if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
			return 0, fmt.Errorf("%w: operand %v", ErrInvalidResult, n.Value)
		}
		return n.Value, nil
	}
	if n.Left == nil || n.Right == nil {
		return 0, fmt.Errorf("%w: %v node with one child", ErrMalformedExpression, n.Op)
	}
	x, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	y, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	return n.Op.apply(x, y)
}

// Eval tokenizes, parses and evaluates source, substituting answer for ANS.
// A NaN or infinite result is reported as ErrInvalidResult.
func Eval(source string, answer float64) (float64, error) {
	tokens := TokenizeAnswer(source, answer)
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}
	tree, err := BuildTree(tokens)
	if err != nil {
		return 0, err
	}
	v, err := Evaluate(tree)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidResult, v)
	}
	return v, nil
}
