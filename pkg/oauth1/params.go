package oauth1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type (
	// Params holds the merged request parameters sent alongside the
	// OAuth parameters, keyed by name. The same set feeds the
	// signature and the outbound query string, so any mutation after
	// signing invalidates the request.
	Params map[string]Value

	// A Value is a scalar request parameter value. Strings are
	// percent-encoded when the parameter string is built; numbers and
	// booleans keep their literal textual form.
	Value struct {
		text    string
		literal bool
	}
)

// An UnsupportedValueTypeError reports a template parameter whose type
// cannot be carried by an OAuth1 parameter string.
type UnsupportedValueTypeError struct {
	Key string
}

func (e *UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("unsupported value type for parameter %q: only string, number and boolean are allowed", e.Key)
}

// String returns a Value carrying a string.
func String(s string) Value {
	return Value{text: s}
}

// Number returns a Value keeping the literal decimal form of n.
func Number(n json.Number) Value {
	return Value{text: n.String(), literal: true}
}

// Bool returns a Value with the textual form of b.
func Bool(b bool) Value {
	return Value{text: strconv.FormatBool(b), literal: true}
}

// String returns the raw textual form of the value.
func (v Value) String() string {
	return v.text
}

// Encoded returns the form used in parameter strings: percent-encoded
// for strings, the plain literal for numbers and booleans.
func (v Value) Encoded() string {
	if v.literal {
		return v.text
	}
	return Encode(v.text)
}

// ParamsFrom converts decoded JSON template parameters. The decoder
// must run with UseNumber so numbers keep the exact text they had in
// the template file.
func ParamsFrom(raw map[string]any) (Params, error) {
	params := make(Params, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			params[key] = String(v)
		case json.Number:
			params[key] = Number(v)
		case bool:
			params[key] = Bool(v)
		default:
			return nil, &UnsupportedValueTypeError{Key: key}
		}
	}

	return params, nil
}

// UnmarshalJSON decodes a JSON object of scalar values.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	params, err := ParamsFrom(raw)
	if err != nil {
		return err
	}

	*p = params
	return nil
}

// Apply merges one raw KEY=VALUE override into p, replacing any
// existing parameter with the same key. The string is split on the
// first `=`. It reports whether the override was well-formed; a
// malformed one must be skipped by the caller, never treated as fatal.
func (p Params) Apply(raw string) bool {
	key, value, found := strings.Cut(raw, "=")
	if !found || key == "" {
		return false
	}

	p[key] = String(value)
	return true
}

// Pairs returns the fully encoded key=value pairs in unspecified order.
func (p Params) Pairs() []string {
	pairs := make([]string, 0, len(p))
	for key, value := range p {
		pairs = append(pairs, Encode(key)+"="+value.Encoded())
	}
	return pairs
}

// Query returns the sorted pairs joined with `&`. It is the exact byte
// string covered by the signature and sent as the request's query.
func (p Params) Query() string {
	pairs := p.Pairs()
	sort.Strings(pairs)
	return strings.Join(pairs, "&")
}
