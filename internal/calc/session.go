package calc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrorText is displayed after a failed evaluation.
const ErrorText = "Error"

// Session is the state of an interactive calculator: the expression being
// typed, whether it currently shows a fresh result, and the last result.
//
// After a successful Evaluate the text is the result. Appending an operator
// continues from it, appending anything else starts a new expression.
type Session struct {
	text      string
	fresh     bool
	last      string
	lastValue float64
	log       zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for evaluation and paste events.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// NewSession creates an empty session with last result 0.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{last: "0", log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Text is the current expression text.
func (s *Session) Text() string { return s.text }

// Display is the text to show, "0" when the expression is empty.
func (s *Session) Display() string {
	if s.text == "" {
		return "0"
	}
	return s.text
}

// Fresh tells whether the text is a just-computed result or the error marker.
func (s *Session) Fresh() bool { return s.fresh }

// LastResult is the rendering of the last successful evaluation.
func (s *Session) LastResult() string { return s.last }

// LastValue is the value of the last successful evaluation.
func (s *Session) LastValue() float64 { return s.lastValue }

// Append processes one input symbol. It reports false, leaving the session
// unchanged, if in is not a symbol of the input alphabet.
func (s *Session) Append(in string) bool {
	if !isInputSymbol(in) {
		return false
	}
	if in == InputAnswer {
		s.text += s.last
		s.fresh = false
		return true
	}
	if s.fresh && !isOperatorInput(in) {
		s.text = ""
	}
	s.text += in
	s.fresh = false
	return true
}

// Clear empties the expression.
func (s *Session) Clear() {
	s.text = ""
	s.fresh = false
}

// DeleteLast removes the final character of the expression. A trailing ANS
// is removed as a whole.
func (s *Session) DeleteLast() {
	if strings.HasSuffix(s.text, InputAnswer) {
		s.text = strings.TrimSuffix(s.text, InputAnswer)
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.text)
	s.text = s.text[:len(s.text)-size]
}

// Paste replaces the expression with text, minus whitespace. Text containing
// characters outside the input alphabet is rejected and nothing changes.
func (s *Session) Paste(text string) bool {
	if _, ok := SplitInput(text); !ok {
		s.log.Debug().Str("text", text).Msg("paste rejected")
		return false
	}
	s.text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	s.fresh = false
	return true
}

// Evaluate computes the current expression. On success the text becomes the
// result, which is also remembered as the last result. On failure the text
// becomes ErrorText and the last result is kept. Either way the session then
// shows a fresh result. The returned error tells what went wrong.
func (s *Session) Evaluate() error {
	expr := s.text
	v, err := Eval(expr, s.lastValue)
	s.fresh = true
	if err != nil {
		s.log.Debug().Str("expr", expr).Err(err).Msg("evaluation failed")
		s.text = ErrorText
		return err
	}
	s.lastValue = v
	s.last = FormatNumber(v)
	s.text = s.last
	s.log.Debug().Str("expr", expr).Str("result", s.last).Msg("evaluated")
	return nil
}
