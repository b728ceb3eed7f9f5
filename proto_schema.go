/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package avroschema

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoprint"
	"github.com/tryfix/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// ProtoSchema encodes protobuf messages of type T wrapped in an anypb.Any.
type ProtoSchema[T proto.Message] struct {
	info SchemaInfo
}

var _ Codec = new(ProtoSchema[proto.Message])

// NewProtoSchema renders the .proto definition of T for registry
// registration.
func NewProtoSchema[T proto.Message]() (*ProtoSchema[T], error) {
	var zero T
	md := zero.ProtoReflect().Descriptor()

	fd, err := desc.WrapFile(md.ParentFile())
	if err != nil {
		return nil, &SchemaError{Type: string(md.FullName()), Err: errors.WithPrevious(err, `cannot wrap file descriptor`)}
	}

	printer := protoprint.Printer{OmitComments: protoprint.CommentsAll}
	text, err := printer.PrintProtoToString(fd)
	if err != nil {
		return nil, &SchemaError{Type: string(md.FullName()), Err: errors.WithPrevious(err, `cannot print proto definition`)}
	}

	return &ProtoSchema[T]{
		info: SchemaInfo{
			Name:   string(md.FullName()),
			Type:   SchemaTypeProtobuf,
			Schema: text,
		},
	}, nil
}

func (s *ProtoSchema[T]) Info() SchemaInfo {
	return s.info
}

func (s *ProtoSchema[T]) Encode(v interface{}) ([]byte, error) {
	msg, ok := v.(T)
	if !ok {
		return nil, &TypeMismatchError{Expected: s.info.Name, Actual: fmt.Sprintf(`%T`, v)}
	}

	anyPB, err := anypb.New(msg)
	if err != nil {
		return nil, &EncodingError{Type: s.info.Name, Err: errors.WithPrevious(err, `failed to add message into anypb`)}
	}

	value, err := proto.Marshal(anyPB)
	if err != nil {
		return nil, &EncodingError{Type: s.info.Name, Err: errors.WithPrevious(err, `failed to marshal message into anypb`)}
	}

	return value, nil
}

func (s *ProtoSchema[T]) Decode(data []byte) (interface{}, error) {
	return s.DecodeMessage(data)
}

// DecodeMessage decodes data into a new T
func (s *ProtoSchema[T]) DecodeMessage(data []byte) (T, error) {
	var zero T

	wrapper := &anypb.Any{}
	if err := proto.Unmarshal(data, wrapper); err != nil {
		return zero, &DecodingError{Type: s.info.Name, Err: errors.WithPrevious(err, `failed to unmarshal anypb wrapper`)}
	}

	msg := zero.ProtoReflect().New().Interface().(T)
	if err := anypb.UnmarshalTo(wrapper, msg, proto.UnmarshalOptions{}); err != nil {
		return zero, &DecodingError{Type: s.info.Name, Err: errors.WithPrevious(err, `failed to unmarshal anypb`)}
	}

	return msg, nil
}
