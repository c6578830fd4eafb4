package client

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twreq/pkg/oauth1"
)

// APIBase is the root under which template endpoints live.
const APIBase = "https://api.twitter.com/1.1"

// Run performs the whole pipeline for one template: load credentials,
// load the template, merge overrides, sign, send the request and print
// the raw response body on stdout. Exactly one request is performed,
// there is no retry.
func Run(templateFile string, overrides []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return errors.Wrap(err, "could not gather API key information")
	}

	tpl, err := LoadTemplate(templateFile)
	if err != nil {
		return err
	}

	return run(os.Stdout, http.DefaultClient, APIBase, cfg, tpl, overrides)
}

func run(w io.Writer, hc *http.Client, base string, cfg Config, tpl Template, overrides []string) error {
	// The template stays untouched, overrides are merged into a copy.
	params := make(oauth1.Params, len(tpl.Parameters))
	for key, value := range tpl.Parameters {
		params[key] = value
	}
	for _, raw := range overrides {
		if !params.Apply(raw) {
			logrus.Warnf("invalid parameter override %q, skipping", raw)
		}
	}

	endpoint := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(tpl.Endpoint, "/")

	//
	// Sign

	signer := oauth1.NewSigner(cfg.Credentials())
	header, err := signer.Authorize(tpl.Method, endpoint, params)
	if err != nil {
		return errors.Wrap(err, "could not sign request")
	}

	logrus.Debugf("authorization: %s", header)
	for key, value := range params {
		logrus.Debugf("parameter %s: %s", key, value)
	}

	//
	// Build request

	req, err := http.NewRequest(string(tpl.Method), endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", header)

	// The query string must stay byte-identical to the signed
	// parameter set.
	req.URL.RawQuery = params.Query()

	//
	// Perform request

	res, err := hc.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	// The body is printed verbatim whatever the status code is.
	if _, err := io.Copy(w, res.Body); err != nil {
		return errors.Wrap(err, "could not read response body")
	}
	fmt.Fprintln(w)

	return nil
}
