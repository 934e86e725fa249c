package rop

import (
	"errors"
	"strings"
)

var (
	// ErrMalformedTag reports a variant name other than "Ok" or "Err".
	ErrMalformedTag = errors.New("malformed tag")
	// ErrShapeMismatch reports JSON that is not an object of the expected
	// layout: wrong member count, missing tag or content member.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrPayloadDecode reports that the payload's own decoding failed.
	ErrPayloadDecode = errors.New("payload decode error")
)

// DecodeError is returned by every decoding operation in this package.
// Kind is one of ErrMalformedTag, ErrShapeMismatch or ErrPayloadDecode, so
// errors.Is(err, rop.ErrShapeMismatch) works on any decode failure.
type DecodeError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("rop: decode result: ")
	sb.WriteString(e.Kind.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DecodeError) Is(target error) bool {
	return target == e.Kind
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a payload that the JSON library refused to encode,
// e.g. a NaN float.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "rop: encode payload: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func malformedTag(detail string) error {
	return &DecodeError{Kind: ErrMalformedTag, Detail: detail}
}

func shapeMismatch(detail string, err error) error {
	return &DecodeError{Kind: ErrShapeMismatch, Detail: detail, Err: err}
}

func payloadError(err error) error {
	return &DecodeError{Kind: ErrPayloadDecode, Err: err}
}
