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

// Descriptor holds the parsed wire schema of a record type together with the
// factory rebuilding it. It is immutable once built and safe to share
// between goroutines.
type Descriptor[T Record] struct {
	definition string
	backend    Backend
	maxAlloc   int
	binary     binaryCodec
	recordType RecordType[T]
	goType     reflect.Type
}

// NewDescriptor parses the schema of rt with the configured backend.
func NewDescriptor[T Record](rt RecordType[T], opts ...Option) (*Descriptor[T], error) {
	return newDescriptor(rt, newOptions(opts))
}

func newDescriptor[T Record](rt RecordType[T], o *options) (*Descriptor[T], error) {
	goType := reflect.TypeOf((*T)(nil)).Elem()

	definition := rt.Schema()
	binary, err := newBinaryCodec(o.backend, definition, o.maxAlloc)
	if err != nil {
		if _, ok := err.(*ConfigurationError); ok {
			return nil, err
		}
		return nil, &SchemaError{Type: goType.String(), Err: err}
	}

	if !binary.record() {
		return nil, &SchemaError{
			Type: goType.String(),
			Err:  errors.New(fmt.Sprintf(`schema %s is not a record`, binary.canonical())),
		}
	}

	return &Descriptor[T]{
		definition: definition,
		backend:    o.backend,
		maxAlloc:   o.maxAlloc,
		binary:     binary,
		recordType: rt,
		goType:     goType,
	}, nil
}

// Definition returns the schema definition as declared by the record type
func (d *Descriptor[T]) Definition() string {
	return d.definition
}

// Canonical returns the parsing canonical form of the schema
func (d *Descriptor[T]) Canonical() string {
	return d.binary.canonical()
}

// FullName returns the full name of the avro record
func (d *Descriptor[T]) FullName() string {
	return d.binary.fullName()
}

// Backend returns the avro library the schema was parsed with
func (d *Descriptor[T]) Backend() Backend {
	return d.backend
}

// TypeName returns the name of the declared Go type
func (d *Descriptor[T]) TypeName() string {
	return d.goType.String()
}

func (d *Descriptor[T]) construct(fields *Fields) (T, error) {
	return d.recordType.New(fields)
}
