/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"
	"sync"

	"github.com/tryfix/errors"
)

// Backend selects the avro library doing the binary reads and writes
type Backend int

const (
	// BackendHamba uses github.com/hamba/avro/v2
	BackendHamba Backend = iota
	// BackendGoavro uses github.com/linkedin/goavro/v2
	BackendGoavro
)

func (b Backend) String() string {
	switch b {
	case BackendHamba:
		return `hamba`
	case BackendGoavro:
		return `goavro`
	}

	return fmt.Sprintf(`backend(%d)`, int(b))
}

// binaryCodec is a parsed schema able to do schemaless avro reads and writes.
// Implementations are immutable and safe for concurrent use.
type binaryCodec interface {
	// write encodes a normalized value
	write(v interface{}) ([]byte, error)
	// read decodes data into its normalized form
	read(data []byte) (interface{}, error)
	// canonical returns the parsing canonical form of the schema
	canonical() string
	// fullName returns the full name of a named schema, empty otherwise
	fullName() string
	// record reports whether the schema is an avro record
	record() bool
	// resolve returns a read only codec decoding data written with writer
	// into this codec's schema
	resolve(writer string) (binaryCodec, error)
}

// DefaultMaxAllocSize is the largest array, map or bytes length a decoder
// accepts when WithMaxAllocSize is not set
const DefaultMaxAllocSize = 8 << 20

type backendFactory func(schema string, maxAlloc int) (binaryCodec, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[Backend]backendFactory)
)

func registerBackend(b Backend, f backendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[b] = f
}

func newBinaryCodec(b Backend, schema string, maxAlloc int) (binaryCodec, error) {
	backendsMu.RLock()
	f, ok := backends[b]
	backendsMu.RUnlock()
	if !ok {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf(`avro library support was not found for backend %s, build without the noavro tag`, b),
		}
	}

	return f(schema, maxAlloc)
}

type readOnlyCodec struct {
	binaryCodec
}

func (readOnlyCodec) write(interface{}) ([]byte, error) {
	return nil, errors.New(`resolved schema is read only`)
}
