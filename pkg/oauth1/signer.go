package oauth1

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrClockBeforeEpoch is returned when the system clock reports a time
// before the Unix epoch, which cannot be expressed as an
// oauth_timestamp.
var ErrClockBeforeEpoch = errors.New("system clock is before the Unix epoch")

type (
	// Credentials are the pre-issued OAuth1 secrets. Token acquisition
	// is out of scope, all four values come from configuration.
	Credentials struct {
		ConsumerKey       string
		ConsumerSecret    string
		AccessToken       string
		AccessTokenSecret string
	}

	// A Signer computes oauth_signature values and Authorization
	// header values. The nonce and clock sources are injected so the
	// signing pipeline is a pure function of its inputs under test.
	Signer struct {
		creds Credentials
		nonce func() (string, error)
		now   func() time.Time
	}
)

// NewSigner returns a Signer wired to the secure random source and the
// system clock.
func NewSigner(creds Credentials) *Signer {
	return NewSignerWithSources(creds, Nonce, time.Now)
}

// NewSignerWithSources returns a Signer with explicit nonce and clock
// sources.
func NewSignerWithSources(creds Credentials, nonce func() (string, error), now func() time.Time) *Signer {
	return &Signer{creds: creds, nonce: nonce, now: now}
}

// Nonce returns 32 characters drawn from the lowercase hex alphabet
// using the system's secure random source.
func Nonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "could not generate nonce")
	}
	return hex.EncodeToString(b), nil
}

// Authorize runs the whole signing pipeline for one request and
// returns the value of its Authorization header. Given fixed nonce and
// clock sources the output is fully deterministic.
func (s *Signer) Authorize(method Method, endpointURL string, params Params) (string, error) {
	oauth, err := s.oauthParams()
	if err != nil {
		return "", err
	}

	pairs := append(params.Pairs(), encodePairs(oauth)...)
	base := SignatureBase(method, endpointURL, pairs)
	oauth["oauth_signature"] = s.signature(base)

	return AuthorizationHeader(oauth), nil
}

// oauthParams generates the per-request protocol parameters, signature
// excluded.
func (s *Signer) oauthParams() (map[string]string, error) {
	nonce, err := s.nonce()
	if err != nil {
		return nil, err
	}

	timestamp := s.now().Unix()
	if timestamp < 0 {
		return nil, ErrClockBeforeEpoch
	}

	return map[string]string{
		"oauth_version":          "1.0",
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_consumer_key":     s.creds.ConsumerKey,
		"oauth_token":            s.creds.AccessToken,
		"oauth_nonce":            nonce,
		"oauth_timestamp":        strconv.FormatInt(timestamp, 10),
	}, nil
}

// SignatureBase builds the canonical string that gets signed:
// METHOD&Encode(url)&Encode(normalized parameter string). The pairs
// must already be fully encoded; they are sorted here in byte order so
// the result never depends on map iteration order.
func SignatureBase(method Method, endpointURL string, pairs []string) string {
	sorted := make([]string, len(pairs))
	copy(sorted, pairs)
	sort.Strings(sorted)

	return string(method) + "&" + Encode(endpointURL) + "&" + Encode(strings.Join(sorted, "&"))
}

// signature computes base64(HMAC-SHA1(key, base)) with the RFC 5849
// signing key: both secrets percent-encoded and joined with `&`.
// An empty secret is accepted, it only weakens the key.
func (s *Signer) signature(base string) string {
	key := Encode(s.creds.ConsumerSecret) + "&" + Encode(s.creds.AccessTokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// AuthorizationHeader renders the OAuth parameters, signature
// included, as `OAuth key="value", ...` sorted by key.
func AuthorizationHeader(oauth map[string]string) string {
	keys := make([]string, 0, len(oauth))
	for key := range oauth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("OAuth ")
	for i, key := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(Encode(oauth[key]))
		b.WriteString(`"`)
	}

	return b.String()
}

func encodePairs(oauth map[string]string) []string {
	pairs := make([]string, 0, len(oauth))
	for key, value := range oauth {
		pairs = append(pairs, Encode(key)+"="+Encode(value))
	}
	return pairs
}
