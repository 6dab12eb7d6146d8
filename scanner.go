package sfv

import (
	"github.com/kyori19/net-http-structured-field-values/internal/sfvutil"
)

// scanner is a forward byte cursor over an ASCII input with single-byte
// lookahead.  It is stateful and single-pass; once a byte is consumed there
// is no way back.
type scanner struct {
	input []byte
	pos   int
}

// newScanner validates that input is ASCII and positions the cursor at the
// first byte.  A byte above 0x7F aborts construction.
func newScanner(input []byte) (*scanner, error) {
	for i, b := range input {
		if b > 0x7f {
			return nil, newParseError(i, ErrNonASCIIInput).Appendf("byte 0x%02x", b)
		}
	}
	return &scanner{input: input}, nil
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// peek returns the next byte without consuming it.  ok is false at EOF.
func (s *scanner) peek() (b byte, ok bool) {
	if s.eof() {
		return 0, false
	}
	return s.input[s.pos], true
}

// peekMatch reports whether the next byte is a member of class c, without
// consuming it.
func (s *scanner) peekMatch(c sfvutil.Class) bool {
	b, ok := s.peek()
	return ok && sfvutil.Match(b, c)
}

// tryConsume consumes the next byte only when it equals b, and reports
// whether it did.
func (s *scanner) tryConsume(b byte) bool {
	if nb, ok := s.peek(); ok && nb == b {
		s.pos++
		return true
	}
	return false
}

// scan consumes the longest run of bytes in class c.  The result aliases
// the input and is empty when the next byte is not in c or the input is
// exhausted.
func (s *scanner) scan(c sfvutil.Class) []byte {
	start := s.pos
	for s.pos < len(s.input) && sfvutil.Match(s.input[s.pos], c) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// getByte consumes and returns one byte.  ok is false at EOF.
func (s *scanner) getByte() (b byte, ok bool) {
	b, ok = s.peek()
	if ok {
		s.pos++
	}
	return b, ok
}

// skipSP consumes a run of SP bytes.
func (s *scanner) skipSP() {
	s.scan(sfvutil.SP)
}

// skipOWS consumes a run of SP and HTAB bytes.
func (s *scanner) skipOWS() {
	s.scan(sfvutil.OWS)
}
