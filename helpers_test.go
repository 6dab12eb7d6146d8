package sfv

import (
	"encoding/hex"
	"testing"
)

// The plain* helpers convert a value tree into nested plain values so that
// trees can be compared with assert.Equal regardless of the backing
// implementations.  Order matters for parameters and dictionaries.

func plainBareItem(t *testing.T, bi BareItem) interface{} {
	t.Helper()
	switch bi.Type() {
	case ItemTypeInteger:
		return []interface{}{"integer", bi.AsInteger()}
	case ItemTypeDecimal:
		return []interface{}{"decimal", bi.AsDecimal()}
	case ItemTypeString:
		return []interface{}{"string", bi.AsString()}
	case ItemTypeToken:
		return []interface{}{"token", string(bi.AsToken())}
	case ItemTypeByteSequence:
		return []interface{}{"byteSequence", hex.EncodeToString(bi.AsByteSequence())}
	case ItemTypeBoolean:
		return []interface{}{"boolean", bi.AsBoolean()}
	default:
		t.Fatalf("unexpected bare item type %v", bi.Type())
		return nil
	}
}

func plainParameters(t *testing.T, params Parameters) interface{} {
	t.Helper()
	out := []interface{}{}
	if params == nil {
		return out
	}
	params.Range(func(key string, value BareItem) bool {
		out = append(out, []interface{}{key, plainBareItem(t, value)})
		return true
	})
	return out
}

func plainItem(t *testing.T, it Item) interface{} {
	t.Helper()
	return []interface{}{plainBareItem(t, it.BareItem()), plainParameters(t, it.Parameters())}
}

func plainMember(t *testing.T, m Member) interface{} {
	t.Helper()
	switch m.Type() {
	case MemberTypeItem:
		return plainItem(t, m.AsItem())
	case MemberTypeInnerList:
		il := m.AsInnerList()
		items := []interface{}{}
		for _, it := range il.Items() {
			items = append(items, plainItem(t, it))
		}
		return []interface{}{items, plainParameters(t, il.Parameters())}
	default:
		t.Fatalf("unexpected member type %v", m.Type())
		return nil
	}
}

func plainList(t *testing.T, l List) interface{} {
	t.Helper()
	out := []interface{}{}
	for _, m := range l {
		out = append(out, plainMember(t, m))
	}
	return out
}

func plainDictionary(t *testing.T, d Dictionary) interface{} {
	t.Helper()
	out := []interface{}{}
	d.Range(func(key string, m Member) bool {
		out = append(out, []interface{}{key, plainMember(t, m)})
		return true
	})
	return out
}

func plainValue(t *testing.T, v interface{}) interface{} {
	t.Helper()
	switch v := v.(type) {
	case List:
		return plainList(t, v)
	case Dictionary:
		return plainDictionary(t, v)
	case Item:
		return plainItem(t, v)
	default:
		t.Fatalf("unexpected value type %T", v)
		return nil
	}
}
