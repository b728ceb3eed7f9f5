/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"github.com/riferrei/srclient"
)

// SchemaType is the wire format of a Codec
type SchemaType string

const (
	SchemaTypeAvro     SchemaType = `AVRO`
	SchemaTypeProtobuf SchemaType = `PROTOBUF`
)

func (t SchemaType) registryType() srclient.SchemaType {
	if t == SchemaTypeProtobuf {
		return srclient.Protobuf
	}

	return srclient.Avro
}

// SchemaInfo describes a Codec to the messaging client and the schema registry
type SchemaInfo struct {
	Name       string
	Type       SchemaType
	Schema     string
	Properties map[string]string
}

// Codec encodes values of one declared type and decodes them back
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte) (interface{}, error)
	Info() SchemaInfo
}

// definitionMatcher is implemented by codecs able to tell whether a schema
// definition fetched from the registry is the one they write.
type definitionMatcher interface {
	Matches(definition string) (bool, error)
}

// writerResolver is implemented by codecs able to read data written with
// another version of their schema.
type writerResolver interface {
	WithWriterSchema(definition string) (Codec, error)
}
