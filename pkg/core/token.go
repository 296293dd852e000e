package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingToken is returned when no API token is configured.
var ErrMissingToken = errors.New("missing API token")

// LoadToken reads key from the process environment, falling back to the
// dotenv file at envFile. The environment lookup uses key exactly as given;
// dotenv keys match case-insensitively. A missing envFile is not an error.
func LoadToken(envFile, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("token variable name is required")
	}

	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}

	v := viper.New()
	if envFile = strings.TrimSpace(envFile); envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read env file %s: %w", envFile, err)
		}
	}

	token := strings.TrimSpace(v.GetString(key))
	if token == "" {
		return "", fmt.Errorf("%w: set %s", ErrMissingToken, key)
	}
	return token, nil
}
