package jsonutil

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfigValidationOn = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// UnmarshalError is returned when a document does not match the target type. Its message is
// the parser's diagnostic without the echoed input, which may be large.
type UnmarshalError struct {
	msg string
}

func (e *UnmarshalError) Error() string {
	return e.msg
}

// Unmarshal unmarshals a byte slice into the specified data structure. Field names match
// case-sensitively and unknown fields are ignored.
func Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return &UnmarshalError{msg: "expect { or n, but found nothing"}
	}
	if err := jsonConfigValidationOn.Unmarshal(data, v); err != nil {
		return &UnmarshalError{msg: tryExtractErrorMessage(err)}
	}
	return nil
}

// ObjectMembers returns the raw value of each member of the JSON object in data whose name is
// listed in fields. A listed name that appears twice is an error. Other members are skipped.
func ObjectMembers(data []byte, fields ...string) (map[string][]byte, error) {
	iter := jsonConfigValidationOn.BorrowIterator(data)
	defer jsonConfigValidationOn.ReturnIterator(iter)

	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return nil, &UnmarshalError{msg: fmt.Sprintf("expect {, but found %s", valueTypeName(next))}
	}

	members := make(map[string][]byte, len(fields))
	var duplicate string
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if !slices.Contains(fields, key) {
			it.Skip()
			return true
		}
		if _, ok := members[key]; ok {
			duplicate = key
			return false
		}
		// skip whitespace so the capture starts at the value
		it.WhatIsNext()
		members[key] = it.SkipAndReturnBytes()
		return true
	})

	if duplicate != "" {
		return nil, &UnmarshalError{msg: fmt.Sprintf("duplicate field %q", duplicate)}
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, &UnmarshalError{msg: tryExtractErrorMessage(iter.Error)}
	}
	return members, nil
}

// IsNull reports whether raw is the JSON null literal.
func IsNull(raw []byte) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func valueTypeName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.ArrayValue:
		return "array"
	default:
		return "nothing"
	}
}

// Marshal marshals a data structure into a byte slice with map keys sorted.
func Marshal(v interface{}) ([]byte, error) {
	return jsonConfigValidationOn.Marshal(v)
}

// tryExtractErrorMessage trims the input excerpt jsoniter appends to its errors.
func tryExtractErrorMessage(err error) string {
	msg := err.Error()

	if i := strings.Index(msg, ", error found in #"); i > 0 {
		msg = msg[:i]
	}
	if msg == "" {
		return "malformed json"
	}
	return msg
}

// IsUnmarshalError reports whether err came from Unmarshal.
func IsUnmarshalError(err error) bool {
	var target *UnmarshalError
	return errors.As(err, &target)
}
