package sfv

import (
	"bytes"
	"encoding/base64"
	"math"
	"strconv"

	"github.com/kyori19/net-http-structured-field-values/internal/sfvutil"
)

// Serialize writes value as a structured field value.  value may be a
// Dictionary, a List, a Member, an Item, a BareItem, or a raw Go value
// accepted by NewBareItem; raw values and bare items are wrapped with empty
// parameters.  On failure no output is returned.
//
// Serialize reads the tree without modifying it.
func Serialize(value interface{}) ([]byte, error) {
	var s serializer
	var err error
	switch v := value.(type) {
	case Dictionary:
		err = s.dictionary(v)
	case List:
		err = s.list(v)
	case Member:
		err = s.member(v)
	case Item:
		err = s.item(v)
	case BareItem:
		err = s.item(NewItem(v, nil))
	case nil:
		err = newSerializeError(ItemTypeInvalid, ErrNilValue)
	case int, int32, int64, float64, string, Token, []byte, bool:
		err = s.item(NewItem(NewBareItem(v), nil))
	default:
		err = newSerializeError(ItemTypeInvalid, ErrUnsupportedItemType).Appendf("%T", v)
	}
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// SerializeInnerList writes list as a standalone inner list.  RFC 8941 has
// no framing for an inner list outside of a list or dictionary, so the
// result is a fragment, not a field value.
func SerializeInnerList(list InnerList) ([]byte, error) {
	if list == nil {
		return nil, newSerializeError(ItemTypeInvalid, ErrNilValue)
	}
	var s serializer
	if err := s.innerList(list); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// serializer accumulates output.  Validation failures surface as errors
// from the serialize methods; the partially written buffer is then
// discarded by the entry points.
type serializer struct {
	bytes.Buffer
}

func (s *serializer) dictionary(d Dictionary) error {
	if d == nil {
		return nil
	}
	var err error
	i := 0
	d.Range(func(key string, m Member) bool {
		if i > 0 {
			s.WriteString(", ")
		}
		i++
		if err = s.key(key); err != nil {
			return false
		}
		if m == nil {
			err = newSerializeError(ItemTypeInvalid, ErrNilValue).Appendf("dictionary member %q", key)
			return false
		}
		if m.Type() == MemberTypeItem && isTrueItem(m.AsItem()) {
			// boolean true members use the short form: key and parameters
			err = s.parameters(m.AsItem().Parameters())
			return err == nil
		}
		s.WriteByte('=')
		err = s.member(m)
		return err == nil
	})
	return err
}

func (s *serializer) list(l List) error {
	for i, m := range l {
		if i > 0 {
			s.WriteString(", ")
		}
		if m == nil {
			return newSerializeError(ItemTypeInvalid, ErrNilValue).Appendf("list member %d", i)
		}
		if err := s.member(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *serializer) member(m Member) error {
	switch m.Type() {
	case MemberTypeItem:
		return s.item(m.AsItem())
	case MemberTypeInnerList:
		return s.innerList(m.AsInnerList())
	default:
		return newSerializeError(ItemTypeInvalid, ErrUnsupportedItemType)
	}
}

func (s *serializer) innerList(l InnerList) error {
	s.WriteByte('(')
	for i, item := range l.Items() {
		if i > 0 {
			s.WriteByte(' ')
		}
		if err := s.item(item); err != nil {
			return err
		}
	}
	s.WriteByte(')')
	return s.parameters(l.Parameters())
}

func (s *serializer) item(it Item) error {
	if it == nil || it.BareItem() == nil {
		return newSerializeError(ItemTypeInvalid, ErrNilValue)
	}
	if err := s.bareItem(it.BareItem()); err != nil {
		return err
	}
	return s.parameters(it.Parameters())
}

func (s *serializer) parameters(p Parameters) error {
	if p == nil {
		return nil
	}
	var err error
	p.Range(func(key string, value BareItem) bool {
		s.WriteByte(';')
		if err = s.key(key); err != nil {
			return false
		}
		if value == nil {
			err = newSerializeError(ItemTypeInvalid, ErrNilValue).Appendf("parameter %q", key)
			return false
		}
		if value.Type() == ItemTypeBoolean && value.AsBoolean() {
			// true values are implied by the bare key
			return true
		}
		s.WriteByte('=')
		err = s.bareItem(value)
		return err == nil
	})
	return err
}

func (s *serializer) key(k string) error {
	if len(k) == 0 || !sfvutil.Match(k[0], sfvutil.KeyStart) {
		return newSerializeError(ItemTypeInvalid, ErrInvalidSerialKey).Appendf("%q", k)
	}
	for i := 1; i < len(k); i++ {
		if !sfvutil.Match(k[i], sfvutil.SerialKeyChar) {
			return newSerializeError(ItemTypeInvalid, ErrInvalidSerialKey).Appendf("%q", k)
		}
	}
	s.WriteString(k)
	return nil
}

func (s *serializer) bareItem(bi BareItem) error {
	switch bi.Type() {
	case ItemTypeInteger:
		return s.integer(bi.AsInteger())
	case ItemTypeDecimal:
		return s.decimal(bi.AsDecimal())
	case ItemTypeString:
		return s.str(bi.AsString())
	case ItemTypeToken:
		return s.token(bi.AsToken())
	case ItemTypeByteSequence:
		s.byteSequence(bi.AsByteSequence())
		return nil
	case ItemTypeBoolean:
		s.boolean(bi.AsBoolean())
		return nil
	default:
		return newSerializeError(bi.Type(), ErrUnsupportedItemType)
	}
}

func (s *serializer) integer(v int64) error {
	if v < -maxInteger || v > maxInteger {
		return newSerializeError(ItemTypeInteger, ErrIntegerOutOfRange).Appendf("%d", v)
	}
	s.WriteString(strconv.FormatInt(v, 10))
	return nil
}

func (s *serializer) decimal(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return newSerializeError(ItemTypeDecimal, ErrNotANumber)
	}
	neg, intPart, fracPart := sfvutil.RoundDecimal(strconv.FormatFloat(v, 'f', -1, 64))
	if len(intPart) > 12 {
		return newSerializeError(ItemTypeDecimal, ErrDecimalIntTooLong).Appendf("%d digits", len(intPart))
	}
	if neg {
		s.WriteByte('-')
	}
	s.WriteString(intPart)
	s.WriteByte('.')
	s.WriteString(fracPart)
	return nil
}

func (s *serializer) str(v string) error {
	s.WriteByte('"')
	for i := 0; i < len(v); i++ {
		b := v[i]
		switch {
		case b == '"' || b == '\\':
			s.WriteByte('\\')
			s.WriteByte(b)
		case sfvutil.Match(b, sfvutil.StringChar):
			s.WriteByte(b)
		default:
			return newSerializeError(ItemTypeString, ErrInvalidStringChar).Appendf("byte 0x%02x", b)
		}
	}
	s.WriteByte('"')
	return nil
}

func (s *serializer) token(v Token) error {
	if len(v) == 0 || !sfvutil.Match(v[0], sfvutil.TokenStart) {
		return newSerializeError(ItemTypeToken, ErrInvalidToken).Appendf("%q", string(v))
	}
	for i := 1; i < len(v); i++ {
		if !sfvutil.Match(v[i], sfvutil.TokenChar) {
			return newSerializeError(ItemTypeToken, ErrInvalidToken).Appendf("%q", string(v))
		}
	}
	s.WriteString(string(v))
	return nil
}

func (s *serializer) byteSequence(v []byte) {
	s.WriteByte(':')
	s.WriteString(base64.StdEncoding.EncodeToString(v))
	s.WriteByte(':')
}

func (s *serializer) boolean(v bool) {
	if v {
		s.WriteString("?1")
	} else {
		s.WriteString("?0")
	}
}

// isTrueItem reports whether it is an item whose bare item is boolean true.
func isTrueItem(it Item) bool {
	if it == nil || it.BareItem() == nil {
		return false
	}
	bi := it.BareItem()
	return bi.Type() == ItemTypeBoolean && bi.AsBoolean()
}
