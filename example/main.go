/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package main

import (
	"fmt"
	"time"

	"github.com/riferrei/srclient"
	"github.com/tryfix/avroschema"
	"github.com/tryfix/log"
)

const pointSchema = `{
	"type": "record",
	"name": "Point",
	"namespace": "com.tryfix.example",
	"fields": [
		{"name": "x", "type": "int"},
		{"name": "y", "type": "int"}
	]
}`

type Point struct {
	X, Y int
}

func (p Point) Fields() []avroschema.Field {
	return []avroschema.Field{
		{Name: `x`, Value: avroschema.Int(p.X)},
		{Name: `y`, Value: avroschema.Int(p.Y)},
	}
}

var pointType = avroschema.Declare(pointSchema, func(f *avroschema.Fields) (Point, error) {
	p := Point{X: f.Int(`x`), Y: f.Int(`y`)}
	return p, f.Err()
})

func main() {
	logger := log.NewLog().Log(log.WithLevel(log.TRACE))

	points, err := avroschema.NewAvroSchema(pointType, avroschema.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	// mock client, point the registry to a running schema registry instead
	url := `http://localhost:8081/`
	client := srclient.CreateMockSchemaRegistryClient(url)
	if _, err := client.SetSchema(1, `points`, pointSchema, srclient.Avro, 1); err != nil {
		log.Fatal(err)
	}

	registry, err := avroschema.NewRegistry(url,
		avroschema.WithMockClient(client),
		avroschema.WithLogger(logger),
		avroschema.WithBackgroundSync(10*time.Second),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer registry.Close()

	if err := registry.Register(`points`, avroschema.VersionLatest, points); err != nil {
		log.Fatal(err)
	}

	if err = registry.Sync(); err != nil {
		log.Fatal(err)
	}

	registry.Print()

	payload, err := registry.WithLatestSchema(`points`).Encode(Point{X: 3, Y: 4})
	if err != nil {
		log.Fatal(err)
	}

	v, err := registry.GenericEncoder().Decode(payload)
	if err != nil {
		log.Fatal(err)
	}

	logger.Info(fmt.Sprintf(`decoded %+v`, v))
}
