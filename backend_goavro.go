//go:build !noavro

/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"encoding/json"
	"fmt"

	"github.com/linkedin/goavro/v2"
	"github.com/tryfix/errors"
)

func init() {
	// goavro limits are package level, WithMaxAllocSize does not change them
	goavro.MaxBlockCount = DefaultMaxAllocSize
	goavro.MaxBlockSize = DefaultMaxAllocSize
	registerBackend(BackendGoavro, newGoavroCodec)
}

type goavroCodec struct {
	codec    *goavro.Codec
	name     string
	isRecord bool
}

func newGoavroCodec(schema string, _ int) (binaryCodec, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, errors.WithPrevious(err, `goavro codec init failed`)
	}

	// canonical form is a JSON string for primitives, an array for unions
	// and an object carrying the full name for named types
	var canonical interface{}
	if err := json.Unmarshal([]byte(codec.CanonicalSchema()), &canonical); err != nil {
		return nil, errors.WithPrevious(err, `goavro canonical schema is not valid json`)
	}

	c := &goavroCodec{codec: codec}
	if named, ok := canonical.(map[string]interface{}); ok {
		c.name, _ = named[`name`].(string)
		c.isRecord = named[`type`] == `record`
	}

	return c, nil
}

func (c *goavroCodec) write(v interface{}) ([]byte, error) {
	byt, err := c.codec.BinaryFromNative(nil, v)
	if err != nil {
		return nil, errors.WithPrevious(err, `binary from native failed`)
	}

	return byt, nil
}

func (c *goavroCodec) read(data []byte) (interface{}, error) {
	native, rest, err := c.codec.NativeFromBinary(data)
	if err != nil {
		return nil, errors.WithPrevious(err, `native from binary failed`)
	}

	if len(rest) > 0 {
		return nil, errors.New(fmt.Sprintf(`%d trailing bytes after datum`, len(rest)))
	}

	return native, nil
}

func (c *goavroCodec) canonical() string {
	return c.codec.CanonicalSchema()
}

func (c *goavroCodec) fullName() string {
	return c.name
}

func (c *goavroCodec) record() bool {
	return c.isRecord
}

func (c *goavroCodec) resolve(writer string) (binaryCodec, error) {
	w, err := goavro.NewCodec(writer)
	if err != nil {
		return nil, errors.WithPrevious(err, `goavro writer codec init failed`)
	}

	if w.CanonicalSchema() != c.codec.CanonicalSchema() {
		return nil, errors.New(`goavro backend does not support writer schema resolution`)
	}

	return &readOnlyCodec{binaryCodec: c}, nil
}
