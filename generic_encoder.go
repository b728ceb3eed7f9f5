/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"github.com/tryfix/errors"
)

// GenericEncoder decodes messages of any registered subject using the schema id prefix
type GenericEncoder struct {
	registry *Registry
}

func (s *GenericEncoder) Encode(interface{}) ([]byte, error) {
	return nil, errors.New(`generic encoder does not support encoding of messages`)
}

func (s *GenericEncoder) Decode(data []byte) (interface{}, error) {
	return s.registry.decode(data)
}

// Schema return the subject asociated with the Encoder
func (s *GenericEncoder) Schema() string {
	return `generic`
}
