/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"time"

	"github.com/riferrei/srclient"
	"github.com/tryfix/log"
)

type options struct {
	backend        Backend
	maxDepth       int
	maxAlloc       int
	backGroundSync bool
	syncInterval   time.Duration
	autoRegister   bool
	client         srclient.ISchemaRegistryClient
	logger         log.Logger
}

// Option is a type to host schema and registry configurations
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		backend:  BackendHamba,
		maxDepth: DefaultMaxDepth,
		maxAlloc: DefaultMaxAllocSize,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	return o
}

// WithLogger sets the logger used by schemas and the registry
func WithLogger(logger log.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithBackend selects the avro library used for binary encoding
func WithBackend(backend Backend) Option {
	return func(options *options) {
		options.backend = backend
	}
}

// WithMaxDepth caps the nesting depth accepted by the value normalizer
func WithMaxDepth(depth int) Option {
	return func(options *options) {
		options.maxDepth = depth
	}
}

// WithMaxAllocSize caps the length of arrays and bytes accepted while
// decoding with BackendHamba. Larger lengths fail with a DecodingError
// before any allocation. BackendGoavro always applies DefaultMaxAllocSize.
func WithMaxAllocSize(size int) Option {
	return func(options *options) {
		options.maxAlloc = size
	}
}

// WithBackgroundSync makes Registry.Sync poll the schema registry for new
// versions of registered subjects every interval.
func WithBackgroundSync(interval time.Duration) Option {
	return func(options *options) {
		options.backGroundSync = true
		options.syncInterval = interval
	}
}

// WithAutoRegister creates missing subjects in the schema registry on Register
func WithAutoRegister() Option {
	return func(options *options) {
		options.autoRegister = true
	}
}

// WithMockClient replaces the schema registry client (tests and examples)
func WithMockClient(client srclient.ISchemaRegistryClient) Option {
	return func(options *options) {
		options.client = client
	}
}
