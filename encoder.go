/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"encoding/binary"
	"fmt"

	"github.com/tryfix/errors"
)

const (
	magicByte  byte = 0
	prefixSize      = 5
)

// Encoder holds the reference to Registry and Subject which can be used to encode and decode messages
type Encoder struct {
	subject  *Subject
	registry *Registry
	codec    Codec
	readOnly bool
}

func newEncoder(reg *Registry, subject *Subject, codec Codec, readOnly bool) *Encoder {
	return &Encoder{
		subject:  subject,
		registry: reg,
		codec:    codec,
		readOnly: readOnly,
	}
}

// Encode return a byte slice with a encoded message. magic byte and schema id will be appended to its beginning
//
//	╔════════════════════╤════════════════════╤═════════════════╗
//	║ magic byte(1 byte) │ schema id(4 bytes) │ encoded message ║
//	╚════════════════════╧════════════════════╧═════════════════╝
func (s *Encoder) Encode(data interface{}) ([]byte, error) {
	if s.readOnly {
		return nil, errors.New(fmt.Sprintf(`subject [%s][%s] is registered for decoding only`,
			s.subject.Subject, Version(s.subject.Version)))
	}

	body, err := s.codec.Encode(data)
	if err != nil {
		return nil, err
	}

	return append(encodePrefix(s.subject.Id), body...), nil
}

// Decode returns the decoded go interface of a framed message and error if its unable to decode.
// The schema id of the message selects the codec, it does not have to be this encoder's one.
func (s *Encoder) Decode(data []byte) (interface{}, error) {
	return s.registry.decode(data)
}

// Schema return the subject definition asociated with the Encoder
func (s *Encoder) Schema() string {
	return s.subject.Schema
}

// Subject returns the registry subject of the Encoder
func (s *Encoder) Subject() Subject {
	return *s.subject
}

func encodePrefix(id int) []byte {
	byt := make([]byte, prefixSize)
	byt[0] = magicByte
	binary.BigEndian.PutUint32(byt[1:], uint32(id))
	return byt
}

func decodePrefix(byt []byte) (int, error) {
	if len(byt) < prefixSize {
		return 0, &DecodingError{Type: `message`, Err: errors.New(fmt.Sprintf(`message length %d is shorter than the prefix`, len(byt)))}
	}

	if byt[0] != magicByte {
		return 0, &DecodingError{Type: `message`, Err: errors.New(fmt.Sprintf(`unknown magic byte %d`, byt[0]))}
	}

	return int(binary.BigEndian.Uint32(byt[1:prefixSize])), nil
}
