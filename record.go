/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

// Record is a typed object with a fixed, named and ordered set of fields.
type Record interface {
	// Fields returns the record fields in declaration order
	Fields() []Field
}

// Field is a single named record field
type Field struct {
	Name  string
	Value Value
}

// RecordType declares a record type T to the schema layer.
type RecordType[T Record] interface {
	// Schema returns the avro schema definition (JSON) of T
	Schema() string
	// New constructs a T from decoded fields. Implementations should return
	// fields.Err() so missing, mistyped and unread fields are reported.
	New(fields *Fields) (T, error)
}

type declaredType[T Record] struct {
	schema    string
	construct func(fields *Fields) (T, error)
}

// Declare returns a RecordType backed by an avro schema definition and a
// constructor func.
func Declare[T Record](schema string, construct func(fields *Fields) (T, error)) RecordType[T] {
	return &declaredType[T]{
		schema:    schema,
		construct: construct,
	}
}

func (d *declaredType[T]) Schema() string {
	return d.schema
}

func (d *declaredType[T]) New(fields *Fields) (T, error) {
	return d.construct(fields)
}
