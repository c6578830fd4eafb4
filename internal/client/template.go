package client

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"twreq/pkg/oauth1"
)

// A Template is the declarative description of one request: endpoint
// path under the API root, HTTP verb and named parameters. It is
// loaded once and immutable afterwards, overrides are merged into a
// separate parameter set.
type Template struct {
	Endpoint   string        `json:"endpoint"`
	Method     oauth1.Method `json:"method"`
	Parameters oauth1.Params `json:"parameters"`
}

// LoadTemplate reads and validates a request template file.
func LoadTemplate(filename string) (Template, error) {
	var t Template

	f, err := os.Open(filename)
	if err != nil {
		return t, errors.Wrap(err, "could not open template file")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&t); err != nil {
		return t, errors.Wrap(err, "could not parse template file")
	}

	if t.Endpoint == "" {
		return t, errors.New("template must define an endpoint")
	}
	if t.Method == "" {
		return t, errors.New("template must define a method")
	}
	if t.Parameters == nil {
		t.Parameters = oauth1.Params{}
	}

	return t, nil
}
