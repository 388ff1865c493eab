package xmlrecord

import (
	"fmt"
	"reflect"
	"sort"
)

// Field is one key/value pair of a Record. The Name is sanitized into an
// element name when the field is written; the Value may be a scalar, a
// nested Record or map, or a list.
type Field struct {
	Name  string
	Value any
}

// Record is the unit of input to a Session: an ordered sequence of fields.
// Fields render in slice order, which is how record sources preserve the
// key order of their input documents.
//
// Records are caller-owned. The writer never mutates one and never retains
// a reference past the WriteRecord call it was passed to.
type Record []Field

// RecordFromMap converts a plain map into a Record in sorted key order.
// Sorting keeps output deterministic; callers that care about a specific
// field order should build the Record directly.
func RecordFromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rec := make(Record, 0, len(m))
	for _, k := range keys {
		rec = append(rec, Field{Name: k, Value: m[k]})
	}
	return rec
}

// reflectRecord converts any map-kinded value into a Record in sorted
// stringified-key order. Returns false for non-map values.
func reflectRecord(v any) (Record, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	rec := make(Record, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec = append(rec, Field{Name: fmt.Sprint(iter.Key().Interface()), Value: iter.Value().Interface()})
	}
	sort.Slice(rec, func(i, j int) bool { return rec[i].Name < rec[j].Name })
	return rec, true
}

// listItems reports v as a list and returns its items. []byte is not a
// list here; it renders as a scalar.
func listItems(v any) ([]any, bool) {
	switch tv := v.(type) {
	case []any:
		return tv, true
	case []Record:
		items := make([]any, len(tv))
		for i, r := range tv {
			items[i] = r
		}
		return items, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
