package sfvutil

// Class identifies one or more of the ASCII character classes used by the
// structured field value grammar.  Classes are bit flags so a single table
// lookup answers membership for any of them.
type Class uint16

const (
	// Digit matches 0-9.
	Digit Class = 1 << iota
	// LCAlpha matches a-z.
	LCAlpha
	// Alpha matches a-z and A-Z.
	Alpha
	// KeyStart matches the first byte of a key: a-z and "*".
	KeyStart
	// KeyChar matches the remaining bytes of a parsed key:
	// a-z, 0-9, "_", "-", ".", and "*".
	KeyChar
	// SerialKeyChar matches the bytes of a serialized key.  It is KeyChar
	// without "."; keys containing "." parse but do not serialize.
	SerialKeyChar
	// TokenStart matches the first byte of a token: ALPHA and "*".
	TokenStart
	// TokenChar matches the remaining bytes of a token: tchar plus ":"
	// and "/".
	TokenChar
	// StringChar matches the bytes allowed literally inside a quoted
	// string: SP and VCHAR except DQUOTE and "\".
	StringChar
	// Base64Char matches the bytes allowed between the ":" delimiters of
	// a byte sequence: ALPHA, DIGIT, "+", "/", and "=".
	Base64Char
	// SP matches the space byte.
	SP
	// OWS matches optional whitespace: space and horizontal tab.
	OWS
)

var classTable [128]Class

func init() {
	for i := 0; i < 128; i++ {
		c := byte(i)
		var f Class

		digit := '0' <= c && c <= '9'
		lower := 'a' <= c && c <= 'z'
		upper := 'A' <= c && c <= 'Z'

		if digit {
			f |= Digit
		}
		if lower {
			f |= LCAlpha
		}
		if lower || upper {
			f |= Alpha
		}
		if lower || c == '*' {
			f |= KeyStart
		}
		if lower || digit || c == '_' || c == '-' || c == '*' {
			f |= KeyChar | SerialKeyChar
		}
		if c == '.' {
			f |= KeyChar
		}
		if lower || upper || c == '*' {
			f |= TokenStart
		}
		if lower || upper || digit {
			f |= TokenChar
		} else {
			switch c {
			case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^',
				'_', '`', '|', '~', ':', '/':
				f |= TokenChar
			}
		}
		if c == 0x20 || c == 0x21 || (0x23 <= c && c <= 0x5b) || (0x5d <= c && c <= 0x7e) {
			f |= StringChar
		}
		if lower || upper || digit || c == '+' || c == '/' || c == '=' {
			f |= Base64Char
		}
		if c == ' ' {
			f |= SP | OWS
		}
		if c == '\t' {
			f |= OWS
		}

		classTable[i] = f
	}
}

// Match reports whether b is a member of any of the classes in c.  Bytes
// outside the ASCII range match no class.
func Match(b byte, c Class) bool {
	return b < 0x80 && classTable[b]&c != 0
}
