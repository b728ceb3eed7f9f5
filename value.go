/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"
	"reflect"

	"github.com/tryfix/errors"
)

// Kind identifies the variant held by a Value
type Kind uint8

const (
	ScalarKind Kind = iota
	EnumKind
	RecordKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return `scalar`
	case EnumKind:
		return `enum`
	case RecordKind:
		return `record`
	case SequenceKind:
		return `sequence`
	case MappingKind:
		return `mapping`
	}

	return fmt.Sprintf(`kind(%d)`, uint8(k))
}

// Value is a record field value. The set of variants is closed, values are
// built with the constructors in this file.
type Value interface {
	Kind() Kind
	value()
}

type scalarValue struct{ v interface{} }

type enumValue struct{ member fmt.Stringer }

type recordValue struct{ record Record }

type sequenceValue []Value

type mappingValue map[string]Value

func (scalarValue) Kind() Kind { return ScalarKind }
func (enumValue) Kind() Kind { return EnumKind }
func (recordValue) Kind() Kind { return RecordKind }
func (sequenceValue) Kind() Kind { return SequenceKind }
func (mappingValue) Kind() Kind { return MappingKind }

func (scalarValue) value() {}
func (enumValue) value() {}
func (recordValue) value() {}
func (sequenceValue) value() {}
func (mappingValue) value() {}

func Null() Value { return scalarValue{} }
func Bool(v bool) Value { return scalarValue{v} }
func Int(v int) Value { return scalarValue{v} }
func Long(v int64) Value { return scalarValue{v} }
func Float(v float32) Value { return scalarValue{v} }
func Double(v float64) Value { return scalarValue{v} }
func String(v string) Value { return scalarValue{v} }
func Bytes(v []byte) Value { return scalarValue{v} }
func Nested(r Record) Value { return recordValue{r} }
func Sequence(vs ...Value) Value { return sequenceValue(vs) }

// Enum holds an enumeration member. It is written as member.String(), so
// the String method must return the avro symbol, not the ordinal.
func Enum(member fmt.Stringer) Value { return enumValue{member} }

// Mapping holds a string keyed avro map
func Mapping(m map[string]Value) Value { return mappingValue(m) }

// SequenceOf converts items with fn, keeping their order.
func SequenceOf[E any](items []E, fn func(E) Value) Value {
	seq := make(sequenceValue, len(items))
	for i, item := range items {
		seq[i] = fn(item)
	}

	return seq
}

// MappingOf converts every value of m with fn.
func MappingOf[E any](m map[string]E, fn func(E) Value) Value {
	out := make(mappingValue, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}

	return out
}

var (
	stringerIface = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	recordIface   = reflect.TypeOf((*Record)(nil)).Elem()
	valueIface    = reflect.TypeOf((*Value)(nil)).Elem()
)

// ValueOf lifts a plain Go value into a Value. Records, enumeration members
// (integer or string kinds implementing fmt.Stringer), slices, string keyed
// maps and avro primitives are supported, everything else is rejected with
// an EncodingError.
func ValueOf(v interface{}) (Value, error) {
	if v == nil {
		return Null(), nil
	}

	return valueOf(reflect.ValueOf(v))
}

func valueOf(rv reflect.Value) (Value, error) {
	typ := rv.Type()

	switch {
	case typ.Implements(valueIface):
		if rv.Kind() == reflect.Interface && rv.IsNil() {
			return Null(), nil
		}
		return rv.Interface().(Value), nil
	case typ.Implements(recordIface):
		if isNilPointer(rv) {
			return Null(), nil
		}
		return Nested(rv.Interface().(Record)), nil
	case typ.Implements(stringerIface) && isEnumKind(rv.Kind()):
		return Enum(rv.Interface().(fmt.Stringer)), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return Int(int(rv.Int())), nil
	case reflect.Int64:
		return Long(rv.Int()), nil
	case reflect.Uint8, reflect.Uint16:
		return Int(int(rv.Uint())), nil
	case reflect.Uint32:
		return Long(int64(rv.Uint())), nil
	case reflect.Float32:
		return Float(float32(rv.Float())), nil
	case reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return valueOf(rv.Elem())
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			if rv.Kind() == reflect.Slice {
				return Bytes(rv.Bytes()), nil
			}
			b := make([]byte, rv.Len())
			for i := range b {
				b[i] = byte(rv.Index(i).Uint())
			}
			return Bytes(b), nil
		}

		seq := make(sequenceValue, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := valueOf(rv.Index(i))
			if err != nil {
				return nil, err
			}
			seq[i] = item
		}
		return seq, nil
	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return nil, &EncodingError{
				Type: typ.String(),
				Err:  errors.New(fmt.Sprintf(`map keys must be strings, got %s`, typ.Key())),
			}
		}

		m := make(mappingValue, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, err := valueOf(iter.Value())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = item
		}
		return m, nil
	}

	return nil, &EncodingError{
		Type: typ.String(),
		Err:  errors.New(fmt.Sprintf(`unsupported value kind %s`, rv.Kind())),
	}
}

func isEnumKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	}

	return false
}

func isNilPointer(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}

	return false
}
