package rop

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// tagEncoder and tagDecoder are implemented by Result and Option so that
// nested payloads are written and read with the caller's tagging.
type tagEncoder interface {
	encodeTagged(t Tagging) ([]byte, error)
}

type tagDecoder interface {
	decodeTagged(data []byte, t Tagging) error
}

var (
	tagEncoderType  = reflect.TypeFor[tagEncoder]()
	tagDecoderType  = reflect.TypeFor[tagDecoder]()
	unmarshalerType = reflect.TypeFor[interface{ UnmarshalJSON([]byte) error }]()
)

// EncodeTagged returns the JSON encoding of r under t.
//
// The tagging reaches payloads that are a Result or an Option, or a pointer
// to one. A Result held inside another payload type, such as a struct
// field, is encoded by its MarshalJSON method and is always externally
// tagged; use Adjacent for such fields.
func EncodeTagged[S, F any](r Result[S, F], t Tagging) ([]byte, error) {
	return r.encodeTagged(t)
}

// DecodeTagged parses data as a Result laid out under t.
// Errors are always *DecodeError.
func DecodeTagged[S, F any](data []byte, t Tagging) (Result[S, F], error) {
	var r Result[S, F]
	if err := r.decodeTagged(data, t); err != nil {
		return Result[S, F]{}, err
	}
	return r, nil
}

// MarshalJSON encodes r with external tagging.
func (r Result[S, F]) MarshalJSON() ([]byte, error) {
	return r.encodeTagged(External)
}

// UnmarshalJSON decodes r from external tagging.
func (r *Result[S, F]) UnmarshalJSON(data []byte) error {
	return r.decodeTagged(data, External)
}

func (r Result[S, F]) encodeTagged(t Tagging) ([]byte, error) {
	variant := ErrTag
	var payload []byte
	var err error
	if r.isSuccess {
		variant = OkTag
		payload, err = encodeValue(r.ok, t)
	} else {
		payload, err = encodeValue(r.err, t)
	}
	if err != nil {
		return nil, err
	}

	out := []byte{'{'}
	if t.adjacent {
		if out, err = appendString(out, t.tag); err != nil {
			return nil, err
		}
		out = append(out, ':')
		if out, err = appendString(out, variant); err != nil {
			return nil, err
		}
		out = append(out, ',')
		if out, err = appendString(out, t.content); err != nil {
			return nil, err
		}
	} else if out, err = appendString(out, variant); err != nil {
		return nil, err
	}
	out = append(out, ':')
	out = append(out, payload...)
	return append(out, '}'), nil
}

func (r *Result[S, F]) decodeTagged(data []byte, t Tagging) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}

	var variant string
	var content jsontext.Value
	if t.adjacent {
		rawTag, ok := obj[t.tag]
		if !ok {
			return shapeMismatch(fmt.Sprintf("missing tag member %q", t.tag), nil)
		}
		content, ok = obj[t.content]
		if !ok {
			return shapeMismatch(fmt.Sprintf("missing content member %q", t.content), nil)
		}
		if len(obj) != 2 {
			return shapeMismatch(fmt.Sprintf("expected 2 members, got %d", len(obj)), nil)
		}
		if kindOf(rawTag) != '"' {
			return malformedTag(fmt.Sprintf("tag member %q is not a string", t.tag))
		}
		if err := json.Unmarshal(rawTag, &variant); err != nil {
			return malformedTag(err.Error())
		}
	} else {
		if len(obj) != 1 {
			return shapeMismatch(fmt.Sprintf("expected 1 member, got %d", len(obj)), nil)
		}
		for k, v := range obj {
			variant, content = k, v
		}
	}

	switch variant {
	case OkTag:
		v, err := decodePayload[S](content, t)
		if err != nil {
			return err
		}
		*r = Success[S, F](v)
	case ErrTag:
		v, err := decodePayload[F](content, t)
		if err != nil {
			return err
		}
		*r = Fail[S](v)
	default:
		return malformedTag(fmt.Sprintf("unknown variant %q", variant))
	}
	return nil
}

// MarshalJSON encodes None as null and Some(v) as the encoding of v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	return o.encodeTagged(External)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	return o.decodeTagged(data, External)
}

func (o Option[T]) encodeTagged(t Tagging) ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return encodeValue(o.value, t)
}

func (o *Option[T]) decodeTagged(data []byte, t Tagging) error {
	if isNull(data) {
		*o = None[T]()
		return nil
	}
	v, err := decodeValue[T](data, t)
	if err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Adjacent wraps a Result so that its JSON methods use DefaultAdjacent.
// It is meant for record fields:
//
//	type Response struct {
//		Result rop.Adjacent[int, string] `json:"result"`
//	}
type Adjacent[S, F any] struct {
	Result[S, F]
}

func AdjacentOf[S, F any](r Result[S, F]) Adjacent[S, F] {
	return Adjacent[S, F]{Result: r}
}

func (a Adjacent[S, F]) MarshalJSON() ([]byte, error) {
	return a.Result.encodeTagged(DefaultAdjacent)
}

func (a *Adjacent[S, F]) UnmarshalJSON(data []byte) error {
	return a.Result.decodeTagged(data, DefaultAdjacent)
}

func encodeValue(v any, t Tagging) ([]byte, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.Type().Elem().Implements(tagEncoderType) {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		return encodeValue(rv.Elem().Interface(), t)
	}
	if e, ok := v.(tagEncoder); ok {
		return e.encodeTagged(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return b, nil
}

func decodeValue[T any](data []byte, t Tagging) (T, error) {
	var out T
	if d, ok := any(&out).(tagDecoder); ok {
		err := d.decodeTagged(data, t)
		return out, err
	}
	if rt := reflect.TypeFor[T](); rt.Kind() == reflect.Pointer && rt.Implements(tagDecoderType) {
		if isNull(data) {
			return out, nil
		}
		p := reflect.New(rt.Elem())
		if err := p.Interface().(tagDecoder).decodeTagged(data, t); err != nil {
			return out, err
		}
		return p.Interface().(T), nil
	}
	err := json.Unmarshal(data, &out)
	return out, err
}

// decodePayload rejects null unless T can hold an absent value: Option,
// pointer, interface, slice, map, or a type that decodes null itself.
func decodePayload[T any](data []byte, t Tagging) (T, error) {
	if isNull(data) && !nullable(reflect.TypeFor[T]()) {
		var zero T
		return zero, payloadError(fmt.Errorf("null is not a valid %v", reflect.TypeFor[T]()))
	}
	v, err := decodeValue[T](data, t)
	if err != nil {
		return v, payloadError(err)
	}
	return v, nil
}

func decodeObject(data []byte) (map[string]jsontext.Value, error) {
	if kindOf(data) != '{' {
		return nil, shapeMismatch("expected a JSON object", nil)
	}
	var obj map[string]jsontext.Value
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, shapeMismatch("invalid JSON object", err)
	}
	return obj, nil
}

func nullable(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	}
	return reflect.PointerTo(rt).Implements(unmarshalerType)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// kindOf returns the first significant byte of a JSON value, or 0.
func kindOf(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return append(dst, b...), nil
}
