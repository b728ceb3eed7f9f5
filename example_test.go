//go:build !noavro

package avroschema

import (
	"fmt"
	"time"

	"github.com/riferrei/srclient"
	"github.com/tryfix/log"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func ExampleAvroSchema() {
	sampleType := Declare(`{
		"type": "record",
		"name": "SampleRecord",
		"namespace": "com.mycorp.mynamespace",
		"fields": [
			{"name": "field1", "type": "int"},
			{"name": "field2", "type": "double"},
			{"name": "field3", "type": "string"}
		]
	}`, func(f *Fields) (sampleRecord, error) {
		r := sampleRecord{Field1: f.Int(`field1`), Field2: f.Double(`field2`), Field3: f.String(`field3`)}
		return r, f.Err()
	})

	schema, err := NewAvroSchema(sampleType)
	if err != nil {
		log.Fatal(err)
	}

	byt, err := schema.EncodeRecord(sampleRecord{Field1: 1, Field2: 2.0, Field3: `text`})
	if err != nil {
		panic(err)
	}

	record, err := schema.DecodeRecord(byt)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v", record)
	// Output: {Field1:1 Field2:2 Field3:text}
}

type sampleRecord struct {
	Field1 int
	Field2 float64
	Field3 string
}

func (r sampleRecord) Fields() []Field {
	return []Field{
		{Name: `field1`, Value: Int(r.Field1)},
		{Name: `field2`, Value: Double(r.Field2)},
		{Name: `field3`, Value: String(r.Field3)},
	}
}

func ExampleRegistry_avro() {
	// Init a new schema registry instance and connect
	url := `http://localhost:8081/`
	client := srclient.CreateMockSchemaRegistryClient(url)
	registry, err := NewRegistry(
		url,
		WithBackgroundSync(5*time.Second),
		// MockClient for examples only
		WithMockClient(client),
		WithAutoRegister(),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer registry.Close()

	// Start Background Sync to detect new Versions
	if err := registry.Sync(); err != nil {
		log.Fatal(err)
	}

	points, err := NewAvroSchema(pointType)
	if err != nil {
		log.Fatal(err)
	}

	subject := `test-subject-avro`
	if err := registry.Register(subject, VersionLatest, points); err != nil {
		log.Fatal(err)
	}

	// Encode the message
	bytePayload, err := registry.WithLatestSchema(subject).Encode(Point{X: 3, Y: 4})
	if err != nil {
		panic(err)
	}

	// Decode the message
	ev, err := registry.GenericEncoder().Decode(bytePayload) // Returns Point
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v", ev)
	// Output: {X:3 Y:4}
}

func ExampleProtoSchema() {
	codec, err := NewProtoSchema[*wrapperspb.StringValue]()
	if err != nil {
		log.Fatal(err)
	}

	bytePayload, err := codec.Encode(wrapperspb.String(`text`))
	if err != nil {
		panic(err)
	}

	ev, err := codec.DecodeMessage(bytePayload) // Returns *wrapperspb.StringValue
	if err != nil {
		panic(err)
	}

	fmt.Println(codec.Info().Name, ev.GetValue())
	// Output: google.protobuf.StringValue text
}
