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

// DefaultMaxDepth is the nesting limit applied when WithMaxDepth is not set
const DefaultMaxDepth = 64

// Normalize converts v into the schema neutral form accepted by the binary
// writers: scalars as is, enumeration members as their symbol, records and
// mappings as map[string]interface{} and sequences as []interface{}.
func Normalize(v Value) (interface{}, error) {
	return normalizer{maxDepth: DefaultMaxDepth}.normalize(v, 0)
}

type normalizer struct {
	maxDepth int
}

func (n normalizer) normalize(v Value, depth int) (interface{}, error) {
	if depth > n.maxDepth {
		return nil, &EncodingError{
			Type: kindName(v),
			Err:  errors.New(fmt.Sprintf(`nesting exceeds max depth %d`, n.maxDepth)),
		}
	}

	switch val := v.(type) {
	case nil:
		return nil, nil
	case scalarValue:
		return val.v, nil
	case enumValue:
		if val.member == nil {
			return nil, &EncodingError{Type: EnumKind.String(), Err: errors.New(`nil enumeration member`)}
		}
		return val.member.String(), nil
	case recordValue:
		return n.record(val.record, depth)
	case sequenceValue:
		seq := make([]interface{}, len(val))
		for i, item := range val {
			norm, err := n.normalize(item, depth+1)
			if err != nil {
				return nil, err
			}
			seq[i] = norm
		}
		return seq, nil
	case mappingValue:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			norm, err := n.normalize(item, depth+1)
			if err != nil {
				return nil, err
			}
			m[k] = norm
		}
		return m, nil
	}

	return nil, &EncodingError{
		Type: fmt.Sprintf(`%T`, v),
		Err:  errors.New(`unknown value variant`),
	}
}

func (n normalizer) record(r Record, depth int) (map[string]interface{}, error) {
	if r == nil || isNilPointer(reflect.ValueOf(r)) {
		return nil, &EncodingError{Type: RecordKind.String(), Err: errors.New(`nil record`)}
	}

	fields := r.Fields()
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if _, ok := m[f.Name]; ok {
			return nil, &EncodingError{
				Type: fmt.Sprintf(`%T`, r),
				Err:  errors.New(fmt.Sprintf(`duplicate field %s`, f.Name)),
			}
		}

		norm, err := n.normalize(f.Value, depth+1)
		if err != nil {
			return nil, err
		}
		m[f.Name] = norm
	}

	return m, nil
}

func kindName(v Value) string {
	if v == nil {
		return `nil`
	}

	return v.Kind().String()
}
