package client

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twreq/pkg/oauth1"
)

const (
	envPrefix  = "TWITTER_"
	dotenvfile = ".env"
)

// A Config holds the pre-issued OAuth1 credentials of the client.
// They live in memory for the process lifetime and are never
// persisted.
type Config struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// LoadConfig gathers credentials from an optional .env file in the
// current directory and from the process environment. Environment
// variables win over file values. A missing credential is fatal
// before any network activity happens.
func LoadConfig() (Config, error) {
	return loadConfig(dotenvfile)
}

func loadConfig(filename string) (Config, error) {
	konf := koanf.New(".")

	if _, err := os.Stat(filename); err == nil {
		if err := konf.Load(file.Provider(filename), dotenv.ParserEnv(envPrefix, ".", trimPrefix)); err != nil {
			return Config{}, errors.Wrapf(err, "could not load %s", filename)
		}
	}

	if err := konf.Load(env.Provider(envPrefix, ".", trimPrefix), nil); err != nil {
		return Config{}, errors.Wrap(err, "could not load environment")
	}

	cfg := Config{
		ConsumerKey:       konf.String("ck"),
		ConsumerSecret:    konf.String("cs"),
		AccessToken:       konf.String("at"),
		AccessTokenSecret: konf.String("ats"),
	}

	for key, value := range map[string]string{
		"CK":  cfg.ConsumerKey,
		"CS":  cfg.ConsumerSecret,
		"AT":  cfg.AccessToken,
		"ATS": cfg.AccessTokenSecret,
	} {
		if !konf.Exists(strings.ToLower(key)) {
			return Config{}, errors.Errorf("missing credential %s%s", envPrefix, key)
		}
		if value == "" {
			// Legal but the signing key degenerates.
			logrus.Warnf("%s%s is empty, the signing key will be weak", envPrefix, key)
		}
	}

	logrus.Debugf("consumer key: %s", cfg.ConsumerKey)
	logrus.Debugf("access token: %s", cfg.AccessToken)

	return cfg, nil
}

// Credentials converts the config for the signer.
func (c Config) Credentials() oauth1.Credentials {
	return oauth1.Credentials{
		ConsumerKey:       c.ConsumerKey,
		ConsumerSecret:    c.ConsumerSecret,
		AccessToken:       c.AccessToken,
		AccessTokenSecret: c.AccessTokenSecret,
	}
}

func trimPrefix(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, envPrefix))
}
