package activity

import (
	"encoding/json"
	"fmt"

	gh "github.com/google/go-github/v57/github"
)

// Kind is the closed set of event kinds the formatter understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindPullRequest
	KindPush
	KindCreate
	KindWatch
	KindFork
	KindIssues
)

var kindsByType = map[string]Kind{
	"PullRequestEvent": KindPullRequest,
	"PushEvent":        KindPush,
	"CreateEvent":      KindCreate,
	"WatchEvent":       KindWatch,
	"ForkEvent":        KindFork,
	"IssuesEvent":      KindIssues,
}

// KindOf maps a provider event type onto a Kind. Unrecognized types map to
// KindUnknown.
func KindOf(eventType string) Kind {
	return kindsByType[eventType]
}

func (k Kind) String() string {
	switch k {
	case KindPullRequest:
		return "pull_request"
	case KindPush:
		return "push"
	case KindCreate:
		return "create"
	case KindWatch:
		return "watch"
	case KindFork:
		return "fork"
	case KindIssues:
		return "issues"
	default:
		return "unknown"
	}
}

// Payload holds the variant-specific fields the formatter reads. Nil means
// the field was absent from the record.
type Payload struct {
	CommitCount *int
	RefType     *string
	Action      *string
}

// Event is one entry of a user's public activity feed.
type Event struct {
	Repo    string
	Kind    Kind
	Type    string
	Payload Payload
}

type rawPayload struct {
	Commits *[]json.RawMessage `json:"commits"`
	RefType *string            `json:"ref_type"`
	Action  *string            `json:"action"`
}

// FromGitHub converts an SDK event. A missing repo name is an error. The
// payload is decoded leniently: fields of an unexpected shape are an error,
// missing fields are left nil.
func FromGitHub(ev *gh.Event) (Event, error) {
	if ev == nil {
		return Event{}, fmt.Errorf("nil event")
	}
	out := Event{
		Type: ev.GetType(),
		Kind: KindOf(ev.GetType()),
	}
	out.Repo = ev.GetRepo().GetName()
	if out.Repo == "" {
		return out, fmt.Errorf("%s event has no repo name", out.Type)
	}
	raw := ev.GetRawPayload()
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	var p rawPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", out.Type, err)
	}
	if p.Commits != nil {
		n := len(*p.Commits)
		out.Payload.CommitCount = &n
	}
	out.Payload.RefType = p.RefType
	out.Payload.Action = p.Action
	return out, nil
}
