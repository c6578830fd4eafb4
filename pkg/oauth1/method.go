package oauth1

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Method is the HTTP verb of a signed request. The same value feeds
// the signature base string and the outbound request, they must never
// diverge.
type Method string

// Supported HTTP verbs.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod validates s against the supported verbs.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	}
	return "", errors.Errorf("unsupported method %q", s)
}

// UnmarshalJSON decodes and validates a JSON method string.
func (m *Method) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "could not parse method")
	}

	parsed, err := ParseMethod(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
