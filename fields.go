/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tryfix/errors"
)

// Fields is a decoded record handed to RecordType.New. Accessors return the
// zero value once an error occurred; the first error is kept and reported by
// Err together with any field that was never read.
type Fields struct {
	path     string
	values   map[string]interface{}
	read     map[string]struct{}
	children []*Fields
	err      error
}

// NewFields wraps a decoded field mapping
func NewFields(values map[string]interface{}) *Fields {
	return newFields(``, values)
}

func newFields(path string, values map[string]interface{}) *Fields {
	return &Fields{
		path:   path,
		values: values,
		read:   make(map[string]struct{}, len(values)),
	}
}

// Has reports whether the decoded record carries the field name
func (f *Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Ignore marks fields as read without converting them
func (f *Fields) Ignore(names ...string) {
	for _, name := range names {
		f.read[name] = struct{}{}
	}
}

// Err returns the first conversion error of f or of any nested Fields, or
// an error naming the fields that were decoded but never read.
func (f *Fields) Err() error {
	if f.err != nil {
		return f.err
	}

	for _, child := range f.children {
		if err := child.Err(); err != nil {
			return err
		}
	}

	var unread []string
	for name := range f.values {
		if _, ok := f.read[name]; !ok {
			unread = append(unread, f.fieldPath(name))
		}
	}

	if len(unread) > 0 {
		sort.Strings(unread)
		return errors.New(fmt.Sprintf(`unexpected fields [%s]`, strings.Join(unread, `, `)))
	}

	return nil
}

func (f *Fields) Int(name string) int {
	v, ok := f.get(name)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			f.fail(name, fmt.Sprintf(`value %d overflows int`, n))
			return 0
		}
		return int(n)
	}

	f.mistyped(name, `int`, v)
	return 0
}

func (f *Fields) Long(name string) int64 {
	v, ok := f.get(name)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	}

	f.mistyped(name, `long`, v)
	return 0
}

func (f *Fields) Float(name string) float32 {
	v, ok := f.get(name)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	}

	f.mistyped(name, `float`, v)
	return 0
}

func (f *Fields) Double(name string) float64 {
	v, ok := f.get(name)
	if !ok {
		return 0
	}

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	}

	f.mistyped(name, `double`, v)
	return 0
}

func (f *Fields) String(name string) string {
	return lookup[string](f, name, `string`)
}

func (f *Fields) Bool(name string) bool {
	return lookup[bool](f, name, `boolean`)
}

func (f *Fields) Bytes(name string) []byte {
	return lookup[[]byte](f, name, `bytes`)
}

// Symbol returns the symbol of an enum field
func (f *Fields) Symbol(name string) string {
	return lookup[string](f, name, `enum`)
}

// Array returns an array field in its decoded form
func (f *Fields) Array(name string) []interface{} {
	return lookup[[]interface{}](f, name, `array`)
}

// Map returns a map field in its decoded form
func (f *Fields) Map(name string) map[string]interface{} {
	return lookup[map[string]interface{}](f, name, `map`)
}

// Record returns a nested record field. Errors of the nested Fields are
// reported by the parent's Err.
func (f *Fields) Record(name string) *Fields {
	m := lookup[map[string]interface{}](f, name, `record`)
	return f.child(f.fieldPath(name), m)
}

// Records returns an array of records field, in order
func (f *Fields) Records(name string) []*Fields {
	items := lookup[[]interface{}](f, name, `array`)
	if items == nil {
		return nil
	}

	out := make([]*Fields, len(items))
	for i, item := range items {
		path := fmt.Sprintf(`%s[%d]`, f.fieldPath(name), i)
		m, ok := item.(map[string]interface{})
		if !ok {
			f.fail(name, fmt.Sprintf(`item %d: expected record, got %T`, i, item))
			return nil
		}
		out[i] = f.child(path, m)
	}

	return out
}

// RecordMap returns a map of records field
func (f *Fields) RecordMap(name string) map[string]*Fields {
	m := lookup[map[string]interface{}](f, name, `map`)
	if m == nil {
		return nil
	}

	out := make(map[string]*Fields, len(m))
	for k, item := range m {
		path := fmt.Sprintf(`%s[%s]`, f.fieldPath(name), k)
		rec, ok := item.(map[string]interface{})
		if !ok {
			f.fail(name, fmt.Sprintf(`key %s: expected record, got %T`, k, item))
			return nil
		}
		out[k] = f.child(path, rec)
	}

	return out
}

// EnumOf resolves the symbol of an enum field to the member of members whose
// String method returns it.
func EnumOf[E fmt.Stringer](f *Fields, name string, members ...E) E {
	var zero E
	symbol := f.Symbol(name)
	if f.err != nil {
		return zero
	}

	for _, m := range members {
		if m.String() == symbol {
			return m
		}
	}

	f.fail(name, fmt.Sprintf(`unknown symbol %s`, symbol))
	return zero
}

func lookup[V any](f *Fields, name, avroType string) V {
	var zero V
	v, ok := f.get(name)
	if !ok {
		return zero
	}

	typed, ok := v.(V)
	if !ok {
		f.mistyped(name, avroType, v)
		return zero
	}

	return typed
}

func (f *Fields) get(name string) (interface{}, bool) {
	if f.err != nil {
		return nil, false
	}

	f.read[name] = struct{}{}
	v, ok := f.values[name]
	if !ok {
		f.fail(name, `missing field`)
		return nil, false
	}

	return v, true
}

func (f *Fields) child(path string, values map[string]interface{}) *Fields {
	c := newFields(path, values)
	f.children = append(f.children, c)
	return c
}

func (f *Fields) fieldPath(name string) string {
	if f.path == `` {
		return name
	}

	return f.path + `.` + name
}

func (f *Fields) mistyped(name, avroType string, v interface{}) {
	f.fail(name, fmt.Sprintf(`expected %s, got %T`, avroType, v))
}

func (f *Fields) fail(name, msg string) {
	if f.err == nil {
		f.err = errors.New(fmt.Sprintf(`field %s: %s`, f.fieldPath(name), msg))
	}
}
