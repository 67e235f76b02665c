package calc

import (
	"math"
	"regexp"
	"strconv"
)

// Input symbols beyond digits, operators and parentheses.
const (
	InputSqrt   = "√"
	InputPi     = "π"
	InputAnswer = "ANS"
)

// lexemePattern matches the raw lexemes. Anything else in the source is dropped.
var lexemePattern = regexp.MustCompile(`\d+(\.\d+)?|[-+*/^()√π]|ANS`)

// Tokenize splits source into tokens. ANS reads as zero.
func Tokenize(source string) []Token {
	return TokenizeAnswer(source, 0)
}

// TokenizeAnswer splits source into tokens, substituting answer for ANS.
//
// Tokenizing never fails. Unknown characters are skipped, so malformed input
// produces a token sequence that BuildTree rejects later.
func TokenizeAnswer(source string, answer float64) []Token {
	lx := &lexer{raw: lexemePattern.FindAllString(source, -1), answer: answer}
	return lx.tokens()
}

type lexer struct {
	raw    []string
	pos    int
	answer float64
}

// tokens converts all remaining raw lexemes.
func (lx *lexer) tokens() []Token {
	var out []Token
	for lx.pos < len(lx.raw) {
		out = lx.item(out)
	}
	return out
}

// item converts the next raw lexeme and appends the result to out.
func (lx *lexer) item(out []Token) []Token {
	s := lx.raw[lx.pos]
	lx.pos++
	switch {
	case s == InputSqrt:
		return lx.sqrt(out)
	case s == "(":
		return append(out, LeftParen{})
	case s == ")":
		return append(out, RightParen{})
	case s == "-" && unaryPosition(out):
		if lx.pos < len(lx.raw) {
			if v, ok := lx.value(lx.raw[lx.pos]); ok {
				lx.pos++
				return append(out, Number(-v))
			}
		}
		return append(out, Operator(OpSub))
	case len(s) == 1 && isOp(s[0]):
		return append(out, Operator(s[0]))
	}
	if v, ok := lx.value(s); ok {
		out = append(out, Number(v))
	}
	return out
}

// sqrt expands a square root into ( operand ) ^ 0.5.
func (lx *lexer) sqrt(out []Token) []Token {
	out = append(out, LeftParen{})
	out = lx.operand(out)
	return append(out, RightParen{}, Operator(OpPow), Number(0.5))
}

// operand appends the square root operand following the current position.
// A parenthesized group is taken up to its matching ')' and lexed on its own.
// Otherwise the operand is the next single item.
func (lx *lexer) operand(out []Token) []Token {
	if lx.pos >= len(lx.raw) {
		return out
	}
	if lx.raw[lx.pos] != "(" {
		return lx.item(out)
	}

	lx.pos++
	start, depth := lx.pos, 1
	for ; lx.pos < len(lx.raw); lx.pos++ {
		if lx.raw[lx.pos] == "(" {
			depth++
		} else if lx.raw[lx.pos] == ")" {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	inner := &lexer{raw: lx.raw[start:lx.pos], answer: lx.answer}
	if lx.pos < len(lx.raw) {
		lx.pos++ // skip ')'
	}
	return append(out, inner.tokens()...)
}

// value resolves a numeric lexeme.
func (lx *lexer) value(s string) (float64, bool) {
	switch s {
	case InputPi:
		return math.Pi, true
	case InputAnswer:
		return lx.answer, true
	}
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	// Overlong digit strings become +Inf here and are rejected by Evaluate.
	v, _ := strconv.ParseFloat(s, 64)
	return v, true
}

// unaryPosition tells whether a '-' following out is a sign.
func unaryPosition(out []Token) bool {
	if len(out) == 0 {
		return true
	}
	switch out[len(out)-1].(type) {
	case Operator, LeftParen:
		return true
	}
	return false
}

// FormatNumber renders v as plain decimal text that Tokenize reads back
// as the same value.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
