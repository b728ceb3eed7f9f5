//go:build !noavro

/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/tryfix/errors"
)

func init() {
	registerBackend(BackendHamba, newHambaCodec)
}

type hambaCodec struct {
	schema avro.Schema
	api    avro.API
}

func newHambaCodec(schema string, maxAlloc int) (binaryCodec, error) {
	sch, err := avro.Parse(schema)
	if err != nil {
		return nil, errors.WithPrevious(err, `hamba schema parse failed`)
	}

	return &hambaCodec{
		schema: sch,
		api: avro.Config{
			MaxByteSliceSize:  maxAlloc,
			MaxSliceAllocSize: maxAlloc,
		}.Freeze(),
	}, nil
}

func (c *hambaCodec) write(v interface{}) ([]byte, error) {
	byt, err := c.api.Marshal(c.schema, v)
	if err != nil {
		return nil, errors.WithPrevious(err, `hamba marshal failed`)
	}

	return byt, nil
}

// read decodes exactly one datum. Unlike api.Unmarshal an early end of data
// is an error and so is any byte left after the datum.
func (c *hambaCodec) read(data []byte) (interface{}, error) {
	reader := avro.NewReader(nil, 0, avro.WithReaderConfig(c.api)).Reset(data)

	var v interface{}
	reader.ReadVal(c.schema, &v)
	if reader.Error != nil {
		return nil, errors.WithPrevious(reader.Error, `hamba read failed`)
	}

	if reader.Peek(); reader.Error == nil {
		return nil, errors.New(`trailing bytes after datum`)
	}

	return v, nil
}

func (c *hambaCodec) canonical() string {
	return c.schema.String()
}

func (c *hambaCodec) fullName() string {
	if named, ok := c.schema.(avro.NamedSchema); ok {
		return named.FullName()
	}

	return ``
}

func (c *hambaCodec) record() bool {
	return c.schema.Type() == avro.Record
}

func (c *hambaCodec) resolve(writer string) (binaryCodec, error) {
	w, err := avro.Parse(writer)
	if err != nil {
		return nil, errors.WithPrevious(err, `hamba writer schema parse failed`)
	}

	if w.CacheFingerprint() == c.schema.CacheFingerprint() {
		return &readOnlyCodec{binaryCodec: c}, nil
	}

	resolved, err := avro.NewSchemaCompatibility().Resolve(c.schema, w)
	if err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`cannot resolve writer schema %s`, w.String()))
	}

	return &readOnlyCodec{binaryCodec: &hambaCodec{schema: resolved, api: c.api}}, nil
}
