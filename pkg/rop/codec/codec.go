package codec

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/ib-77/rustresult/pkg/rop"
)

type Codec struct {
	cfg     Config
	tagging rop.Tagging
}

var (
	// External encodes bare values as {"Ok":v} / {"Err":v}.
	External = Must(DefaultConfig())
	// Adjacent encodes bare values as {"type":"Ok","value":v}.
	Adjacent = Must(AdjacentConfig(""))
)

func New(cfg Config) (*Codec, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg, tagging: cfg.tagging()}, nil
}

// Must is like New but panics on an invalid config.
func Must(cfg Config) *Codec {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec) Config() Config {
	return c.cfg
}

func (c *Codec) Tagging() rop.Tagging {
	return c.tagging
}

// Encode writes r in the codec's layout. It fails only when a payload has
// no JSON form.
func Encode[S, F any](c *Codec, r rop.Result[S, F]) ([]byte, error) {
	data, err := rop.EncodeTagged(r, c.tagging)
	if err != nil {
		return nil, err
	}
	if c.cfg.Field == "" {
		return data, nil
	}

	name, err := json.Marshal(c.cfg.Field)
	if err != nil {
		return nil, &rop.EncodeError{Err: err}
	}
	out := make([]byte, 0, len(name)+len(data)+3)
	out = append(out, '{')
	out = append(out, name...)
	out = append(out, ':')
	out = append(out, data...)
	return append(out, '}'), nil
}

// Decode parses data written in the codec's layout. Errors are
// *rop.DecodeError; use errors.Is with rop.ErrMalformedTag,
// rop.ErrShapeMismatch or rop.ErrPayloadDecode to classify them.
// Record members other than the configured field are ignored.
func Decode[S, F any](c *Codec, data []byte) (rop.Result[S, F], error) {
	if c.cfg.Field == "" {
		return rop.DecodeTagged[S, F](data, c.tagging)
	}

	raw, err := c.field(data)
	if err != nil {
		return rop.Result[S, F]{}, err
	}
	return rop.DecodeTagged[S, F](raw, c.tagging)
}

func (c *Codec) field(data []byte) (jsontext.Value, error) {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &rop.DecodeError{Kind: rop.ErrShapeMismatch, Detail: "expected a JSON object record"}
	}

	var record map[string]jsontext.Value
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &rop.DecodeError{Kind: rop.ErrShapeMismatch, Detail: "invalid JSON record", Err: err}
	}

	raw, ok := record[c.cfg.Field]
	if !ok {
		return nil, &rop.DecodeError{
			Kind:   rop.ErrShapeMismatch,
			Detail: fmt.Sprintf("missing field %q", c.cfg.Field),
		}
	}
	return raw, nil
}
