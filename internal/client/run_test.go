package client_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twreq/internal/client"
	"twreq/pkg/oauth1"
)

func testConfig() client.Config {
	return client.Config{
		ConsumerKey:       "ck",
		ConsumerSecret:    "cs",
		AccessToken:       "at",
		AccessTokenSecret: "ats",
	}
}

func TestDispatch(t *testing.T) {
	var received *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(r.Context())
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	tpl := client.Template{
		Endpoint: "statuses/user_timeline.json",
		Method:   oauth1.MethodGet,
		Parameters: oauth1.Params{
			"screen_name": oauth1.String("jack"),
			"count":       oauth1.Bool(true),
		},
	}

	var out bytes.Buffer
	err := client.Dispatch(&out, ts.Client(), ts.URL, testConfig(), tpl, []string{"count=5", "q=a b"})
	require.NoError(t, err)

	assert.Equal(t, "{\"ok\":true}\n", out.String())

	require.NotNil(t, received)
	assert.Equal(t, http.MethodGet, received.Method)
	assert.Equal(t, "/statuses/user_timeline.json", received.URL.Path)

	// Overrides replace template values; the query string is the
	// sorted encoded pair set that was signed.
	assert.Equal(t, "count=5&q=a%20b&screen_name=jack", received.URL.RawQuery)

	header := received.Header.Get("Authorization")
	assert.Regexp(t, `\AOAuth oauth_consumer_key="ck", oauth_nonce="[0-9a-f]{32}", oauth_signature="[^"]+", oauth_signature_method="HMAC-SHA1", oauth_timestamp="\d+", oauth_token="at", oauth_version="1.0"\z`, header)
}

func TestDispatch_SkipsMalformedOverrides(t *testing.T) {
	var received *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(r.Context())
	}))
	defer ts.Close()

	tpl := client.Template{
		Endpoint:   "test.json",
		Method:     oauth1.MethodPost,
		Parameters: oauth1.Params{"q": oauth1.String("keep")},
	}

	var out bytes.Buffer
	err := client.Dispatch(&out, ts.Client(), ts.URL, testConfig(), tpl, []string{"no-separator", "=empty-key", "lang=ja"})
	require.NoError(t, err)

	require.NotNil(t, received)
	assert.Equal(t, http.MethodPost, received.Method)
	assert.Equal(t, "lang=ja&q=keep", received.URL.RawQuery)
}

func TestDispatch_BodyPrintedOnErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"code":32}]}`))
	}))
	defer ts.Close()

	tpl := client.Template{Endpoint: "test.json", Method: oauth1.MethodGet, Parameters: oauth1.Params{}}

	var out bytes.Buffer
	err := client.Dispatch(&out, ts.Client(), ts.URL, testConfig(), tpl, nil)
	require.NoError(t, err)
	assert.Equal(t, "{\"errors\":[{\"code\":32}]}\n", out.String())
}

func TestDispatch_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // connection refused

	tpl := client.Template{Endpoint: "test.json", Method: oauth1.MethodGet, Parameters: oauth1.Params{}}

	var out bytes.Buffer
	err := client.Dispatch(&out, http.DefaultClient, ts.URL, testConfig(), tpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not perform request")
	assert.Empty(t, out.String())
}
