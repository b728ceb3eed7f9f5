//go:build noavro

package avroschema

import (
	"errors"
	"testing"
)

func TestNewAvroSchema_NoBackendCompiled(t *testing.T) {
	for _, b := range []Backend{BackendHamba, BackendGoavro} {
		_, err := NewAvroSchema(pointType, WithBackend(b))

		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Errorf(`%s: need ConfigurationError, have %v`, b, err)
		}
	}
}
