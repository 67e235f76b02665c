package calc

import (
	"fmt"
	"strings"
)

// Node is an expression tree node. Leaves hold Value, interior nodes hold Op
// and both children.
type Node struct {
	Op          Op
	Value       float64
	Left, Right *Node
}

// IsLeaf tells whether n is a number.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// String renders the tree fully parenthesized.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteByte('?')
		return
	}
	if n.IsLeaf() {
		b.WriteString(FormatNumber(n.Value))
		return
	}
	b.WriteByte('(')
	n.Left.write(b)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.Right.write(b)
	b.WriteByte(')')
}

// treeBuilder holds the two stacks of operator-precedence parsing.
// A LeftParen on the operator stack is stored as opParen.
type treeBuilder struct {
	ops      []Op
	operands []*Node
}

const opParen Op = '('

// BuildTree parses tokens into an expression tree.
//
// All operators are left-associative, so 2^3^2 parses as (2^3)^2. A ')'
// without a matching '(' is ignored. A '(' that is never closed is an error.
func BuildTree(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	var tb treeBuilder
	for i, tok := range tokens {
		switch tok := tok.(type) {
		case Number:
			tb.operands = append(tb.operands, &Node{Value: float64(tok)})
		case LeftParen:
			tb.ops = append(tb.ops, opParen)
		case RightParen:
			for len(tb.ops) > 0 && tb.top() != opParen {
				if err := tb.reduce(); err != nil {
					return nil, fmt.Errorf("%w at token %d", err, i)
				}
			}
			if len(tb.ops) > 0 {
				tb.ops = tb.ops[:len(tb.ops)-1]
			}
		case Operator:
			op := Op(tok)
			for len(tb.ops) > 0 && tb.top() != opParen && tb.top().precedence() >= op.precedence() {
				if err := tb.reduce(); err != nil {
					return nil, fmt.Errorf("%w at token %d", err, i)
				}
			}
			tb.ops = append(tb.ops, op)
		default:
			return nil, fmt.Errorf("%w: token %v", ErrUnknownOperator, tok)
		}
	}

	for len(tb.ops) > 0 {
		if tb.top() == opParen {
			return nil, fmt.Errorf("%w: unclosed '('", ErrMalformedExpression)
		}
		if err := tb.reduce(); err != nil {
			return nil, err
		}
	}
	if len(tb.operands) != 1 {
		return nil, fmt.Errorf("%w: %d operands left", ErrMalformedExpression, len(tb.operands))
	}
	return tb.operands[0], nil
}

func (tb *treeBuilder) top() Op {
	return tb.ops[len(tb.ops)-1]
}

// reduce pops one operator and two operands and pushes the combined node.
func (tb *treeBuilder) reduce() error {
	op := tb.top()
	tb.ops = tb.ops[:len(tb.ops)-1]
	n := len(tb.operands)
	if n < 2 {
		return fmt.Errorf("%w: missing operand for %v", ErrMalformedExpression, op)
	}
	node := &Node{Op: op, Left: tb.operands[n-2], Right: tb.operands[n-1]}
	tb.operands = append(tb.operands[:n-2], node)
	return nil
}
