package sfv

import (
	"errors"
	"fmt"

	"github.com/ansel1/merry"
)

// Is reports whether err, or any of its causes, is one of the given errors.
func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

// Details returns err's message along with its location and stacktrace.
func Details(err error) string {
	return merry.Details(err)
}

// IsParseError reports whether err was produced by the parser.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsSerializeError reports whether err was produced by the serializer.
func IsSerializeError(err error) bool {
	var se *SerializeError
	return errors.As(err, &se)
}

const maxInteger = 999_999_999_999_999

var ErrInvalidFieldType = errors.New(`field type must be "list", "dictionary" or "item"`)

var ErrNonASCIIInput = errors.New("input contains a byte outside the ASCII range")
var ErrUnexpectedEnd = errors.New("unexpected end of input")
var ErrUnexpectedByte = errors.New("unexpected byte")
var ErrTrailingBytes = errors.New("trailing bytes after field value")
var ErrIntegerTooLong = errors.New("integers may not have more than 15 digits")
var ErrDecimalIntTooLong = errors.New("decimal integer portions may not have more than 12 digits")
var ErrDecimalFracTooLong = errors.New("decimal fractional portions may not have more than 3 digits")
var ErrInvalidStringChar = errors.New("invalid character in string")
var ErrInvalidEscape = errors.New(`only " and \ may follow \ in a string`)
var ErrInvalidToken = errors.New("tokens must start with ALPHA or * and contain only token characters")
var ErrInvalidKey = errors.New("keys must start with a-z or * and contain only a-z 0-9 _ - . *")
var ErrInvalidBase64 = errors.New("invalid base64 in byte sequence")
var ErrInvalidBoolean = errors.New(`a "?" must be followed by "0" or "1"`)

var ErrIntegerOutOfRange = fmt.Errorf("integer magnitude may not exceed %d", int64(maxInteger))
var ErrNotANumber = errors.New("decimals must be finite numbers")
var ErrInvalidSerialKey = errors.New("serialized keys must start with a-z or * and contain only a-z 0-9 _ - *")
var ErrUnsupportedItemType = errors.New("serialization is not supported for this type")
var ErrNilValue = errors.New("cannot serialize an absent value")

// ParseError is reported when input is not a well-formed structured field
// value of the requested type.  The wrapped cause names the violated
// constraint.
type ParseError struct {
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sfv: cannot parse structured field value at position %d", e.Pos)
}

// SerializeError is reported when a value tree cannot be written as a
// structured field value.  The wrapped cause names the violated constraint.
type SerializeError struct {
	Type ItemType
}

func (e *SerializeError) Error() string {
	msg := "sfv: cannot serialize structured field value"
	if e.Type != ItemTypeInvalid {
		msg += " of type " + e.Type.String()
	}
	return msg
}

func newParseError(pos int, cause error) merry.Error {
	return merry.WrapSkipping(&ParseError{Pos: pos}, 2).WithCause(cause)
}

func newSerializeError(t ItemType, cause error) merry.Error {
	return merry.WrapSkipping(&SerializeError{Type: t}, 2).WithCause(cause)
}
