/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"
)

// ConfigurationError is returned at construction when the binary codec
// library required by a schema is not available in this build.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(`avroschema: %s: %s`, e.Message, e.Err)
	}
	return `avroschema: ` + e.Message
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// SchemaError is returned when a record type's definition cannot be turned
// into a schema descriptor.
type SchemaError struct {
	Type string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(`avroschema: invalid schema for %s: %s`, e.Type, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// TypeMismatchError is returned by Encode when the value is not of the
// schema's declared record type. No bytes are produced.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf(`avroschema: type mismatch, expected %s, got %s`, e.Expected, e.Actual)
}

// EncodingError is returned when a value cannot be normalized or the binary
// writer rejects the normalized value.
type EncodingError struct {
	Type string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf(`avroschema: cannot encode %s: %s`, e.Type, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError is returned when the binary input is truncated, malformed or
// incompatible with the schema.
type DecodingError struct {
	Type string
	Err  error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf(`avroschema: cannot decode %s: %s`, e.Type, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// RecordConstructionError is returned when decoded fields cannot populate
// the declared record type.
type RecordConstructionError struct {
	Type string
	Err  error
}

func (e *RecordConstructionError) Error() string {
	return fmt.Sprintf(`avroschema: cannot construct %s: %s`, e.Type, e.Err)
}

func (e *RecordConstructionError) Unwrap() error { return e.Err }
