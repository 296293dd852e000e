package ghactivity

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const configTemplate = `github:
  base_url: https://api.github.com
  api_version: "2022-11-28"
  user_agent: Gh-User-Activity
  timeout_ms: 10000
  token_env: TOKEN

log:
  level: warn
  format: text

output:
  format: text
`

func writeConfigTemplate(out io.Writer, path string, force bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "wrote config to %s\n", path)
	return err
}
