package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBareItem(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		typ  ItemType
	}{
		{name: "int64", val: int64(1), typ: ItemTypeInteger},
		{name: "int", val: 1, typ: ItemTypeInteger},
		{name: "int32", val: int32(1), typ: ItemTypeInteger},
		{name: "float64", val: 1.5, typ: ItemTypeDecimal},
		{name: "string", val: "a", typ: ItemTypeString},
		{name: "token", val: Token("a"), typ: ItemTypeToken},
		{name: "bytes", val: []byte("a"), typ: ItemTypeByteSequence},
		{name: "bool", val: true, typ: ItemTypeBoolean},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.typ, NewBareItem(test.val).Type())
		})
	}

	t.Run("integer kinds widen to int64", func(t *testing.T) {
		assert.Equal(t, int64(7), NewBareItem(7).AsInteger())
		assert.Equal(t, int64(7), NewBareItem(int32(7)).AsInteger())
	})

	t.Run("unsupported type panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBareItem(uint64(1)) })
		assert.Panics(t, func() { NewBareItem(nil) })
	})

	t.Run("wrong accessor panics", func(t *testing.T) {
		assert.Panics(t, func() { NewBareItem("a").AsInteger() })
	})
}

func TestNewMember(t *testing.T) {
	it := NewItem(NewBareItem(int64(1)), nil)
	m := NewMember(it)
	require.Equal(t, MemberTypeItem, m.Type())
	assert.Equal(t, it, m.AsItem())

	il := NewInnerList(nil, nil)
	m = NewMember(il)
	require.Equal(t, MemberTypeInnerList, m.Type())
	assert.Equal(t, il, m.AsInnerList())

	assert.Panics(t, func() { NewMember("neither") })
}

func TestParametersOrder(t *testing.T) {
	p := NewParameters()
	p.Store("a", NewBareItem(int64(1)))
	p.Store("b", NewBareItem(int64(2)))
	p.Store("c", NewBareItem(int64(3)))
	require.Equal(t, 3, p.Len())

	// updating an existing key keeps its position
	p.Store("a", NewBareItem(int64(9)))

	var keys []string
	p.Range(func(key string, _ BareItem) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	v, ok := p.Load("a")
	require.True(t, ok)
	assert.Equal(t, int64(9), v.AsInteger())

	p.Delete("b")
	require.Equal(t, 2, p.Len())
	_, ok = p.Load("b")
	assert.False(t, ok)

	// deleting a missing key is a no-op
	p.Delete("b")
	assert.Equal(t, 2, p.Len())

	_, ok = p.Load("missing")
	assert.False(t, ok)
}

func TestParametersRangeStops(t *testing.T) {
	p := NewParameters()
	p.Store("a", NewBareItem(int64(1)))
	p.Store("b", NewBareItem(int64(2)))

	var seen int
	p.Range(func(string, BareItem) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestDictionaryOrder(t *testing.T) {
	d := NewDictionary()
	d.Store("a", NewMember(NewItem(NewBareItem(int64(1)), nil)))
	d.Store("b", NewMember(NewItem(NewBareItem(int64(2)), nil)))

	// updating an existing key keeps its position
	d.Store("a", NewMember(NewItem(NewBareItem(int64(3)), nil)))

	var keys []string
	d.Range(func(key string, _ Member) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"a", "b"}, keys)

	v, ok := d.Load("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsItem().BareItem().AsInteger())

	d.Delete("a")
	require.Equal(t, 1, d.Len())
	_, ok = d.Load("a")
	assert.False(t, ok)
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "integer", ItemTypeInteger.String())
	assert.Equal(t, "decimal", ItemTypeDecimal.String())
	assert.Equal(t, "string", ItemTypeString.String())
	assert.Equal(t, "token", ItemTypeToken.String())
	assert.Equal(t, "byteSequence", ItemTypeByteSequence.String())
	assert.Equal(t, "boolean", ItemTypeBoolean.String())
	assert.Equal(t, "item", MemberTypeItem.String())
	assert.Equal(t, "innerList", MemberTypeInnerList.String())
}
