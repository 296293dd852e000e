package activity

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const linePrefix = " - "

// Renderer writes formatted activity to Out.
type Renderer struct {
	Out    io.Writer
	Format string
	Logger *slog.Logger
}

// Entry is the JSON form of one described event.
type Entry struct {
	Type        string `json:"type"`
	Repo        string `json:"repo"`
	Description string `json:"description"`
}

// RenderEvents writes one line per describable event, or a notice when the
// feed is empty. JSON output is always an array.
func (r *Renderer) RenderEvents(user string, events []Event) error {
	if len(events) == 0 && r.Format != FormatJSON {
		return r.printf("No Recent Activity For %s\n", user)
	}
	logger := r.logger()
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		if !Supported(ev) {
			logger.Debug("unsupported event type", "type", ev.Type, "repo", ev.Repo)
			continue
		}
		described := false
		for line := range Lines(ev) {
			described = true
			entries = append(entries, Entry{Type: ev.Type, Repo: ev.Repo, Description: line})
		}
		if !described {
			logger.Debug("event missing payload field", "type", ev.Type, "repo", ev.Repo)
		}
	}

	if r.Format == FormatJSON {
		return writeJSON(r.Out, entries)
	}
	for _, entry := range entries {
		if err := r.printf("%s%s\n", linePrefix, entry.Description); err != nil {
			return err
		}
	}
	return nil
}

// RenderProfile writes the requested profile counters for user.
func (r *Renderer) RenderProfile(user string, p Profile, followers, gists bool) error {
	if r.Format == FormatJSON {
		out := map[string]interface{}{"user": user}
		if followers {
			out["followers"] = p.Followers
		}
		if gists {
			out["public_gists"] = p.PublicGists
		}
		return writeJSON(r.Out, out)
	}
	if followers {
		if err := r.printf("%s's Followers Number: %d\n", user, p.Followers); err != nil {
			return err
		}
	}
	if gists {
		if err := r.printf("%s's Public Gists Number: %d\n", user, p.PublicGists); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(r.Out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func writeJSON(w io.Writer, value interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	return nil
}
