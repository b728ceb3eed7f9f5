package avroschema

import (
	"sort"
	"sync"

	registry "github.com/riferrei/srclient"
)

// lockedClient guards the srclient mock, which is not safe for concurrent
// use, and keeps protobuf schemas the mock would try to compile as avro.
type lockedClient struct {
	*registry.MockSchemaRegistryClient
	mu     sync.Mutex
	protos map[string]map[int]*registry.Schema
}

func newLockedClient() *lockedClient {
	return &lockedClient{
		MockSchemaRegistryClient: registry.CreateMockSchemaRegistryClient(`test`),
		protos:                   make(map[string]map[int]*registry.Schema),
	}
}

func (c *lockedClient) SetSchema(id int, subject string, schema string, schemaType registry.SchemaType, version int) (*registry.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if schemaType != registry.Protobuf {
		return c.MockSchemaRegistryClient.SetSchema(id, subject, schema, schemaType, version)
	}

	s, err := registry.NewSchema(id, schema, schemaType, version, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	if c.protos[subject] == nil {
		c.protos[subject] = make(map[int]*registry.Schema)
	}
	c.protos[subject][version] = s

	return s, nil
}

func (c *lockedClient) CreateSchema(subject string, schema string, schemaType registry.SchemaType, references ...registry.Reference) (*registry.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.MockSchemaRegistryClient.CreateSchema(subject, schema, schemaType, references...)
}

func (c *lockedClient) GetSubjects() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	subjects, err := c.MockSchemaRegistryClient.GetSubjects()
	if err != nil {
		return nil, err
	}

	for subject := range c.protos {
		subjects = append(subjects, subject)
	}

	return subjects, nil
}

func (c *lockedClient) GetSchemaVersions(subject string) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if versions, ok := c.protos[subject]; ok {
		var out []int
		for v := range versions {
			out = append(out, v)
		}
		sort.Ints(out)
		return out, nil
	}

	return c.MockSchemaRegistryClient.GetSchemaVersions(subject)
}

func (c *lockedClient) GetSchemaByVersion(subject string, version int) (*registry.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if versions, ok := c.protos[subject]; ok {
		if s, ok := versions[version]; ok {
			return s, nil
		}
	}

	return c.MockSchemaRegistryClient.GetSchemaByVersion(subject, version)
}

func (c *lockedClient) GetLatestSchema(subject string) (*registry.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if versions, ok := c.protos[subject]; ok {
		var latest *registry.Schema
		for _, s := range versions {
			if latest == nil || s.Version() > latest.Version() {
				latest = s
			}
		}
		return latest, nil
	}

	return c.MockSchemaRegistryClient.GetLatestSchema(subject)
}
