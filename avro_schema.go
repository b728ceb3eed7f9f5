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
	"github.com/tryfix/log"
)

// AvroSchema encodes records of type T to schemaless avro binary and decodes
// them back. All methods are safe for concurrent use.
type AvroSchema[T Record] struct {
	descriptor *Descriptor[T]
	binary     binaryCodec
	normalizer normalizer
	logger     log.Logger
}

var _ Codec = new(AvroSchema[Record])

// NewAvroSchema builds the schema descriptor of rt. It fails with a
// ConfigurationError when the selected avro backend is not compiled in and
// with a SchemaError when the definition cannot be parsed.
func NewAvroSchema[T Record](rt RecordType[T], opts ...Option) (*AvroSchema[T], error) {
	o := newOptions(opts)
	logger := o.logger.NewLog(log.Prefixed(`avroschema`))

	d, err := newDescriptor(rt, o)
	if err != nil {
		logger.Error(fmt.Sprintf(`cannot init avro schema for %s due to %+v`, reflect.TypeOf((*T)(nil)).Elem(), err))
		return nil, err
	}

	return &AvroSchema[T]{
		descriptor: d,
		binary:     d.binary,
		normalizer: normalizer{maxDepth: o.maxDepth},
		logger:     logger,
	}, nil
}

// Descriptor returns the schema descriptor shared by all calls
func (s *AvroSchema[T]) Descriptor() *Descriptor[T] {
	return s.descriptor
}

// Info returns the schema info announced to the schema registry
func (s *AvroSchema[T]) Info() SchemaInfo {
	name := s.descriptor.FullName()
	if name == `` {
		name = s.descriptor.TypeName()
	}

	return SchemaInfo{
		Name:   name,
		Type:   SchemaTypeAvro,
		Schema: s.descriptor.Definition(),
	}
}

// Encode validates that v is a T and encodes it.
func (s *AvroSchema[T]) Encode(v interface{}) ([]byte, error) {
	record, ok := v.(T)
	if !ok {
		return nil, &TypeMismatchError{
			Expected: s.descriptor.TypeName(),
			Actual:   fmt.Sprintf(`%T`, v),
		}
	}

	return s.EncodeRecord(record)
}

// EncodeRecord encodes record, returning either the complete datum or an error
func (s *AvroSchema[T]) EncodeRecord(record T) ([]byte, error) {
	norm, err := s.normalizer.normalize(Nested(record), 0)
	if err != nil {
		return nil, err
	}

	byt, err := s.binary.write(norm)
	if err != nil {
		return nil, &EncodingError{
			Type: s.descriptor.TypeName(),
			Err:  errors.WithPrevious(err, fmt.Sprintf(`binary write failed for schema [%s]`, s.Info().Name)),
		}
	}

	return byt, nil
}

// Decode decodes data into a T, returned as interface{}
func (s *AvroSchema[T]) Decode(data []byte) (interface{}, error) {
	return s.DecodeRecord(data)
}

// DecodeRecord decodes data into a T. On error the zero T is returned.
func (s *AvroSchema[T]) DecodeRecord(data []byte) (T, error) {
	var zero T

	native, err := s.binary.read(data)
	if err != nil {
		return zero, &DecodingError{
			Type: s.descriptor.TypeName(),
			Err:  errors.WithPrevious(err, fmt.Sprintf(`binary read failed for schema [%s]`, s.Info().Name)),
		}
	}

	values, ok := native.(map[string]interface{})
	if !ok {
		return zero, &DecodingError{
			Type: s.descriptor.TypeName(),
			Err:  errors.New(fmt.Sprintf(`expected a record, got %T`, native)),
		}
	}

	record, err := s.descriptor.construct(NewFields(values))
	if err != nil {
		return zero, &RecordConstructionError{Type: s.descriptor.TypeName(), Err: err}
	}

	return record, nil
}

// Matches reports whether definition has the same canonical form as this schema
func (s *AvroSchema[T]) Matches(definition string) (bool, error) {
	other, err := newBinaryCodec(s.descriptor.Backend(), definition, s.descriptor.maxAlloc)
	if err != nil {
		return false, err
	}

	return other.canonical() == s.binary.canonical(), nil
}

// WithWriterSchema returns a decode only Codec reading data written with the
// writer definition into T. Writer and reader must be avro compatible.
func (s *AvroSchema[T]) WithWriterSchema(definition string) (Codec, error) {
	resolved, err := s.binary.resolve(definition)
	if err != nil {
		return nil, &SchemaError{Type: s.descriptor.TypeName(), Err: err}
	}

	return &AvroSchema[T]{
		descriptor: s.descriptor,
		binary:     resolved,
		normalizer: s.normalizer,
		logger:     s.logger,
	}, nil
}
