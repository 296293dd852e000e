package activity

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"
)

// Describe renders one event as a single line. ok is false for unknown
// kinds and for events missing the payload field their kind needs.
func Describe(e Event) (line string, ok bool) {
	switch e.Kind {
	case KindPullRequest:
		return fmt.Sprintf("Opened a pull request in %s", e.Repo), true
	case KindPush:
		if e.Payload.CommitCount == nil {
			return "", false
		}
		return fmt.Sprintf("Pushed %d commits to %s.", *e.Payload.CommitCount, e.Repo), true
	case KindCreate:
		if e.Payload.RefType == nil {
			return "", false
		}
		if *e.Payload.RefType == "repository" {
			return fmt.Sprintf("Created a repository named %s", e.Repo), true
		}
		return fmt.Sprintf("Created a %s in %s", *e.Payload.RefType, e.Repo), true
	case KindWatch:
		return fmt.Sprintf("Starred %s", e.Repo), true
	case KindFork:
		return fmt.Sprintf("Forked %s", e.Repo), true
	case KindIssues:
		if e.Payload.Action == nil {
			return "", false
		}
		return fmt.Sprintf("%s an issue in %s", capitalize(*e.Payload.Action), e.Repo), true
	default:
		return "", false
	}
}

// Lines yields the description of e, if any.
func Lines(e Event) iter.Seq[string] {
	return func(yield func(string) bool) {
		if line, ok := Describe(e); ok {
			yield(line)
		}
	}
}

// Supported reports whether the formatter knows the event's kind.
func Supported(e Event) bool {
	return e.Kind != KindUnknown
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
