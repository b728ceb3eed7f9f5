/*
Package avroschema implements schema driven encoding of typed records to the Avro binary format

Record types declare their fields explicitly (Record.Fields) and their schema through a RecordType.
An AvroSchema validates, normalizes and encodes records without embedding the schema in the payload,
and rebuilds typed records from the payload and the same schema.

# Features
  - Closed Value variants (scalar, enum, record, sequence, mapping) normalized recursively
  - Enumerations encoded by symbol name, never by ordinal
  - Pluggable avro backends (hamba/avro, linkedin/goavro), compiled out with the noavro build tag
  - Decoding of data written with other compatible schema versions
  - Schema registry integration with the magic byte / schema id wire prefix and background version sync

Avro: http://avro.apache.org/docs/current/

Schema registry API : https://docs.confluent.io/platform/current/schema-registry/develop/api.html
*/

package avroschema
