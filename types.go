package sfv

import "fmt"

// Token is a bare item value carrying a symbolic identifier.  It shares its
// underlying characters with String but serializes without quotes and under
// a stricter grammar.
type Token string

// ItemType identifies the variant held by a BareItem.
type ItemType int

const (
	ItemTypeInvalid ItemType = iota
	ItemTypeInteger
	ItemTypeDecimal
	ItemTypeString
	ItemTypeToken
	ItemTypeByteSequence
	ItemTypeBoolean
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeInteger:
		return "integer"
	case ItemTypeDecimal:
		return "decimal"
	case ItemTypeString:
		return "string"
	case ItemTypeToken:
		return "token"
	case ItemTypeByteSequence:
		return "byteSequence"
	case ItemTypeBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// BareItem is a single atomic value without parameters.  Exactly one of the
// As accessors is valid for a given value; Type reports which.  The
// accessors panic when called for the wrong variant.
type BareItem interface {
	Type() ItemType
	AsInteger() int64
	AsDecimal() float64
	AsString() string
	AsToken() Token
	AsByteSequence() []byte
	AsBoolean() bool
}

// NewBareItem wraps val as a BareItem.  val must be an int, int32, int64,
// float64, string, Token, []byte or bool; NewBareItem panics otherwise.
// Integer kinds are widened to int64.
func NewBareItem(val interface{}) BareItem {
	switch v := val.(type) {
	case int:
		return &bareItem{val: int64(v)}
	case int32:
		return &bareItem{val: int64(v)}
	case int64, float64, string, Token, []byte, bool:
		return &bareItem{val: val}
	default:
		panic(fmt.Sprintf("sfv: invalid bare item type %T", v))
	}
}

type bareItem struct {
	val interface{}
}

func (i *bareItem) Type() ItemType {
	switch i.val.(type) {
	case int64:
		return ItemTypeInteger
	case float64:
		return ItemTypeDecimal
	case string:
		return ItemTypeString
	case Token:
		return ItemTypeToken
	case []byte:
		return ItemTypeByteSequence
	case bool:
		return ItemTypeBoolean
	default:
		return ItemTypeInvalid
	}
}

func (i *bareItem) AsInteger() int64 {
	return i.val.(int64)
}

func (i *bareItem) AsDecimal() float64 {
	return i.val.(float64)
}

func (i *bareItem) AsString() string {
	return i.val.(string)
}

func (i *bareItem) AsToken() Token {
	return i.val.(Token)
}

func (i *bareItem) AsByteSequence() []byte {
	return i.val.([]byte)
}

func (i *bareItem) AsBoolean() bool {
	return i.val.(bool)
}

// Parameters is an ordered map from keys to bare items.  Insertion order is
// preserved; storing to an existing key updates the value in place.
type Parameters interface {
	Delete(key string)
	Load(key string) (value BareItem, ok bool)
	Range(f func(key string, value BareItem) bool)
	Store(key string, value BareItem)
	Len() int
}

// NewParameters returns an empty Parameters.
func NewParameters() Parameters {
	return &parameters{}
}

type paramEntry struct {
	key   string
	value BareItem
}

type parameters struct {
	entries []paramEntry
}

func (p *parameters) Delete(key string) {
	i := p.index(key)
	if i == -1 {
		return
	}
	if i < len(p.entries)-1 {
		copy(p.entries[i:], p.entries[i+1:])
	}
	p.entries[len(p.entries)-1] = paramEntry{}
	p.entries = p.entries[:len(p.entries)-1]
}

func (p *parameters) Load(key string) (value BareItem, ok bool) {
	i := p.index(key)
	if i == -1 {
		return nil, false
	}
	return p.entries[i].value, true
}

func (p *parameters) Range(f func(key string, value BareItem) bool) {
	for _, e := range p.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

func (p *parameters) Store(key string, value BareItem) {
	i := p.index(key)
	if i == -1 {
		p.entries = append(p.entries, paramEntry{key: key, value: value})
		return
	}
	p.entries[i].value = value
}

func (p *parameters) Len() int {
	return len(p.entries)
}

func (p *parameters) index(key string) int {
	for i, e := range p.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

// Item is a bare item paired with parameters.
type Item interface {
	BareItem() BareItem
	Parameters() Parameters
}

// NewItem pairs bareItem with params.  params may be nil, which is treated
// as empty everywhere.
func NewItem(bareItem BareItem, params Parameters) Item {
	return &item{
		bareItem: bareItem,
		params:   params,
	}
}

type item struct {
	bareItem BareItem
	params   Parameters
}

func (i *item) BareItem() BareItem {
	return i.bareItem
}

func (i *item) Parameters() Parameters {
	return i.params
}

// InnerList is a parenthesised sequence of items with its own parameters.
// Inner lists do not nest.
type InnerList interface {
	Items() []Item
	Parameters() Parameters
}

// NewInnerList builds an inner list from items and params, either of which
// may be nil.
func NewInnerList(items []Item, params Parameters) InnerList {
	return &innerList{
		items:  items,
		params: params,
	}
}

type innerList struct {
	items  []Item
	params Parameters
}

func (l *innerList) Items() []Item {
	return l.items
}

func (l *innerList) Parameters() Parameters {
	return l.params
}

// MemberType identifies the variant held by a Member.
type MemberType int

const (
	MemberTypeInvalid MemberType = iota
	MemberTypeItem
	MemberTypeInnerList
)

func (t MemberType) String() string {
	switch t {
	case MemberTypeItem:
		return "item"
	case MemberTypeInnerList:
		return "innerList"
	default:
		return fmt.Sprintf("MemberType(%d)", int(t))
	}
}

// Member is a list or dictionary member: either an Item or an InnerList.
type Member interface {
	Type() MemberType
	AsItem() Item
	AsInnerList() InnerList
}

// NewMember wraps val as a Member.  val must be an Item or an InnerList;
// NewMember panics otherwise.
func NewMember(val interface{}) Member {
	m := &member{val: val}
	if m.Type() == MemberTypeInvalid {
		panic(fmt.Sprintf("sfv: invalid member type %T", val))
	}
	return m
}

type member struct {
	val interface{}
}

func (m *member) Type() MemberType {
	switch m.val.(type) {
	case Item:
		return MemberTypeItem
	case InnerList:
		return MemberTypeInnerList
	default:
		return MemberTypeInvalid
	}
}

func (m *member) AsItem() Item {
	return m.val.(Item)
}

func (m *member) AsInnerList() InnerList {
	return m.val.(InnerList)
}

// List is an ordered sequence of members.
type List []Member

// Dictionary is an ordered map from keys to members.  Insertion order is
// preserved; storing to an existing key updates the value in place.  The
// parser resolves duplicate keys so that the last write wins and the entry
// takes the position of the last write.
type Dictionary interface {
	Delete(key string)
	Load(key string) (value Member, ok bool)
	Range(f func(key string, value Member) bool)
	Store(key string, value Member)
	Len() int
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() Dictionary {
	return &dictionary{}
}

type dictEntry struct {
	key   string
	value Member
}

type dictionary struct {
	entries []dictEntry
}

func (d *dictionary) Delete(key string) {
	i := d.index(key)
	if i == -1 {
		return
	}
	if i < len(d.entries)-1 {
		copy(d.entries[i:], d.entries[i+1:])
	}
	d.entries[len(d.entries)-1] = dictEntry{}
	d.entries = d.entries[:len(d.entries)-1]
}

func (d *dictionary) Load(key string) (value Member, ok bool) {
	i := d.index(key)
	if i == -1 {
		return nil, false
	}
	return d.entries[i].value, true
}

func (d *dictionary) Range(f func(key string, value Member) bool) {
	for _, e := range d.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

func (d *dictionary) Store(key string, value Member) {
	i := d.index(key)
	if i == -1 {
		d.entries = append(d.entries, dictEntry{key: key, value: value})
		return
	}
	d.entries[i].value = value
}

func (d *dictionary) Len() int {
	return len(d.entries)
}

func (d *dictionary) index(key string) int {
	for i, e := range d.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}
