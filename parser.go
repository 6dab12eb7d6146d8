package sfv

import (
	"encoding/base64"
	"strconv"

	"github.com/ansel1/merry"
	"github.com/kyori19/net-http-structured-field-values/internal/sfvutil"
)

// Field type names accepted by Parse.
const (
	FieldTypeList       = "list"
	FieldTypeDictionary = "dictionary"
	FieldTypeItem       = "item"
)

// Parse parses input as the named top-level field type and returns a List,
// Dictionary or Item accordingly.  A fieldType outside the three names
// above fails with ErrInvalidFieldType before any scanning.
func Parse(fieldType string, input []byte) (interface{}, error) {
	switch fieldType {
	case FieldTypeList:
		return ParseList(input)
	case FieldTypeDictionary:
		return ParseDictionary(input)
	case FieldTypeItem:
		return ParseItem(input)
	default:
		return nil, merry.Here(ErrInvalidFieldType).Appendf("got %q", fieldType)
	}
}

// ParseList parses input as a top-level list.  Empty input yields an empty
// list.
func ParseList(input []byte) (List, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.ParseList()
}

// ParseDictionary parses input as a top-level dictionary.  Empty input
// yields an empty dictionary.
func ParseDictionary(input []byte) (Dictionary, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.ParseDictionary()
}

// ParseItem parses input as a top-level item.  Empty input fails.
func ParseItem(input []byte) (Item, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.ParseItem()
}

// Parser consumes one field value.  A Parser owns its cursor and is
// one-shot: calling a second Parse method after the first has consumed the
// input does not restart it.  Parsers are not safe for concurrent use.
type Parser struct {
	sc *scanner
}

// NewParser returns a Parser over input.  Construction fails when input
// contains a byte outside the ASCII range.
func NewParser(input []byte) (*Parser, error) {
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	return &Parser{sc: sc}, nil
}

// ParseList consumes the entire input as a list.
func (p *Parser) ParseList() (List, error) {
	p.sc.skipSP()
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseDictionary consumes the entire input as a dictionary.
func (p *Parser) ParseDictionary() (Dictionary, error) {
	p.sc.skipSP()
	dict, err := p.parseDictionary()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return dict, nil
}

// ParseItem consumes the entire input as an item.
func (p *Parser) ParseItem() (Item, error) {
	p.sc.skipSP()
	item, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return item, nil
}

// end requires that only trailing SP remains.
func (p *Parser) end() error {
	p.sc.skipSP()
	if !p.sc.eof() {
		return p.parseError(ErrTrailingBytes)
	}
	return nil
}

func (p *Parser) parseError(cause error) merry.Error {
	return newParseError(p.sc.pos, cause)
}

func (p *Parser) parseList() (List, error) {
	var list List
	for !p.sc.eof() {
		m, err := p.parseItemOrInnerList()
		if err != nil {
			return nil, err
		}
		list = append(list, m)
		p.sc.skipOWS()
		if p.sc.eof() {
			break
		}
		if !p.sc.tryConsume(',') {
			return nil, p.parseError(ErrUnexpectedByte).Append(`expected ","`)
		}
		p.sc.skipOWS()
		if p.sc.eof() {
			return nil, p.parseError(ErrUnexpectedEnd).Append(`after ","`)
		}
	}
	return list, nil
}

func (p *Parser) parseDictionary() (Dictionary, error) {
	dict := NewDictionary()
	for !p.sc.eof() {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		var m Member
		if p.sc.tryConsume('=') {
			m, err = p.parseItemOrInnerList()
			if err != nil {
				return nil, err
			}
		} else {
			params, err := p.parseParameters()
			if err != nil {
				return nil, err
			}
			m = NewMember(NewItem(NewBareItem(true), params))
		}
		// the last write wins and takes the position of the last write
		dict.Delete(key)
		dict.Store(key, m)
		p.sc.skipOWS()
		if p.sc.eof() {
			break
		}
		if !p.sc.tryConsume(',') {
			return nil, p.parseError(ErrUnexpectedByte).Append(`expected ","`)
		}
		p.sc.skipOWS()
		if p.sc.eof() {
			return nil, p.parseError(ErrUnexpectedEnd).Append(`after ","`)
		}
	}
	return dict, nil
}

func (p *Parser) parseItemOrInnerList() (Member, error) {
	if b, ok := p.sc.peek(); ok && b == '(' {
		return p.parseInnerList()
	}
	item, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	return NewMember(item), nil
}

func (p *Parser) parseInnerList() (Member, error) {
	if !p.sc.tryConsume('(') {
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected "("`)
	}
	var items []Item
	for {
		p.sc.skipSP()
		if p.sc.tryConsume(')') {
			break
		}
		if p.sc.eof() {
			return nil, p.parseError(ErrUnexpectedEnd).Append("unterminated inner list")
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		b, ok := p.sc.peek()
		if !ok {
			return nil, p.parseError(ErrUnexpectedEnd).Append("unterminated inner list")
		}
		if b != ' ' && b != ')' {
			return nil, p.parseError(ErrUnexpectedByte).Append(`expected SP or ")" after inner list item`)
		}
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	return NewMember(NewInnerList(items, params)), nil
}

func (p *Parser) parseItem() (Item, error) {
	bi, err := p.parseBareItem()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	return NewItem(bi, params), nil
}

func (p *Parser) parseBareItem() (BareItem, error) {
	b, ok := p.sc.peek()
	if !ok {
		return nil, p.parseError(ErrUnexpectedEnd).Append("expected a bare item")
	}
	switch {
	case b == '-' || sfvutil.Match(b, sfvutil.Digit):
		return p.parseNumber()
	case b == '"':
		return p.parseString()
	case sfvutil.Match(b, sfvutil.TokenStart):
		return p.parseToken()
	case b == ':':
		return p.parseByteSequence()
	case b == '?':
		return p.parseBoolean()
	default:
		return nil, p.parseError(ErrUnexpectedByte).Appendf("%q does not start a bare item", b)
	}
}

func (p *Parser) parseParameters() (Parameters, error) {
	params := NewParameters()
	for p.sc.tryConsume(';') {
		p.sc.skipSP()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		var value BareItem
		if p.sc.tryConsume('=') {
			value, err = p.parseBareItem()
			if err != nil {
				return nil, err
			}
		} else {
			value = NewBareItem(true)
		}
		// the last write wins and takes the position of the last write
		params.Delete(key)
		params.Store(key, value)
	}
	return params, nil
}

func (p *Parser) parseKey() (string, error) {
	if !p.sc.peekMatch(sfvutil.KeyStart) {
		return "", p.parseError(ErrInvalidKey)
	}
	return string(p.sc.scan(sfvutil.KeyChar)), nil
}

func (p *Parser) parseNumber() (BareItem, error) {
	neg := p.sc.tryConsume('-')
	if !p.sc.peekMatch(sfvutil.Digit) {
		return nil, p.parseError(ErrUnexpectedByte).Append("expected a digit")
	}
	intPart := p.sc.scan(sfvutil.Digit)
	if !p.sc.tryConsume('.') {
		if len(intPart) > 15 {
			return nil, p.parseError(ErrIntegerTooLong)
		}
		v, err := strconv.ParseInt(string(intPart), 10, 64)
		if err != nil {
			return nil, p.parseError(err)
		}
		if neg {
			v = -v
		}
		return NewBareItem(v), nil
	}
	if len(intPart) > 12 {
		return nil, p.parseError(ErrDecimalIntTooLong)
	}
	fracPart := p.sc.scan(sfvutil.Digit)
	if len(fracPart) == 0 {
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected a digit after "."`)
	}
	if len(fracPart) > 3 {
		return nil, p.parseError(ErrDecimalFracTooLong)
	}
	s := string(intPart) + "." + string(fracPart)
	if neg {
		s = "-" + s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, p.parseError(err)
	}
	return NewBareItem(v), nil
}

func (p *Parser) parseString() (BareItem, error) {
	if !p.sc.tryConsume('"') {
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected """`)
	}
	var out []byte
	for {
		if p.sc.tryConsume('\\') {
			b, ok := p.sc.getByte()
			if !ok {
				return nil, p.parseError(ErrUnexpectedEnd).Append("unterminated string")
			}
			if b != '"' && b != '\\' {
				return nil, p.parseError(ErrInvalidEscape)
			}
			out = append(out, b)
			continue
		}
		if p.sc.tryConsume('"') {
			return NewBareItem(string(out)), nil
		}
		chunk := p.sc.scan(sfvutil.StringChar)
		if len(chunk) == 0 {
			if p.sc.eof() {
				return nil, p.parseError(ErrUnexpectedEnd).Append("unterminated string")
			}
			return nil, p.parseError(ErrInvalidStringChar)
		}
		out = append(out, chunk...)
	}
}

func (p *Parser) parseToken() (BareItem, error) {
	if !p.sc.peekMatch(sfvutil.TokenStart) {
		return nil, p.parseError(ErrInvalidToken)
	}
	return NewBareItem(Token(p.sc.scan(sfvutil.TokenChar))), nil
}

func (p *Parser) parseByteSequence() (BareItem, error) {
	if !p.sc.tryConsume(':') {
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected ":"`)
	}
	encoded := p.sc.scan(sfvutil.Base64Char)
	if !p.sc.tryConsume(':') {
		if p.sc.eof() {
			return nil, p.parseError(ErrUnexpectedEnd).Append("unterminated byte sequence")
		}
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected ":"`)
	}
	// Padding is not enforced: both the padded and unpadded forms decode,
	// as do non-zero trailing pad bits.
	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(string(encoded))
		if err != nil {
			return nil, p.parseError(ErrInvalidBase64)
		}
	}
	return NewBareItem(data), nil
}

func (p *Parser) parseBoolean() (BareItem, error) {
	if !p.sc.tryConsume('?') {
		return nil, p.parseError(ErrUnexpectedByte).Append(`expected "?"`)
	}
	b, ok := p.sc.getByte()
	if !ok {
		return nil, p.parseError(ErrUnexpectedEnd).Append(`expected "0" or "1"`)
	}
	switch b {
	case '0':
		return NewBareItem(false), nil
	case '1':
		return NewBareItem(true), nil
	default:
		return nil, p.parseError(ErrInvalidBoolean)
	}
}
