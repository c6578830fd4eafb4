package client

import (
	"io"
	"net/http"
)

// This file is only for test purpose and is only loaded by test framework.

// Dispatch runs the signing and dispatch pipeline against the given
// base URL.
func Dispatch(w io.Writer, hc *http.Client, base string, cfg Config, tpl Template, overrides []string) error {
	return run(w, hc, base, cfg, tpl, overrides)
}

// LoadConfigFile loads credentials with an explicit dotenv filename.
func LoadConfigFile(filename string) (Config, error) {
	return loadConfig(filename)
}
