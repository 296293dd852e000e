package activity

import (
	"context"
	"log/slog"

	gh "github.com/google/go-github/v57/github"
)

// EventsLister is the slice of the GitHub activity API the service needs.
type EventsLister interface {
	ListEventsPerformedByUser(ctx context.Context, user string, publicOnly bool, opts *gh.ListOptions) ([]*gh.Event, *gh.Response, error)
}

// UserGetter is the slice of the GitHub users API the service needs.
type UserGetter interface {
	Get(ctx context.Context, user string) (*gh.User, *gh.Response, error)
}

// Profile holds the public counters of a user.
type Profile struct {
	Login       string
	Followers   int
	PublicGists int
}

// Service fetches a user's activity feed and profile counters.
type Service struct {
	Events EventsLister
	Users  UserGetter
	Logger *slog.Logger
}

// NewService wires a Service to a go-github client.
func NewService(client *gh.Client, logger *slog.Logger) *Service {
	return &Service{
		Events: client.Activity,
		Users:  client.Users,
		Logger: logger,
	}
}

// ListEvents returns the first page of events performed by user. Records
// without a repo name or with a wrong-typed payload field (e.g. a numeric
// "action") are logged and dropped rather than failing the whole feed.
func (s *Service) ListEvents(ctx context.Context, user string) ([]Event, error) {
	raw, resp, err := s.Events.ListEventsPerformedByUser(ctx, user, false, nil)
	if err := classify(user, resp, err); err != nil {
		return nil, err
	}
	logger := s.logger()
	events := make([]Event, 0, len(raw))
	for _, item := range raw {
		ev, err := FromGitHub(item)
		if err != nil {
			logger.Warn("skipping malformed event", "user", user, "error", err)
			continue
		}
		events = append(events, ev)
	}
	logger.Debug("fetched events", "user", user, "count", len(events))
	return events, nil
}

// Profile returns the follower and public gist counts of user.
func (s *Service) Profile(ctx context.Context, user string) (Profile, error) {
	u, resp, err := s.Users.Get(ctx, user)
	if err := classify(user, resp, err); err != nil {
		return Profile{}, err
	}
	login := u.GetLogin()
	if login == "" {
		login = user
	}
	return Profile{
		Login:       login,
		Followers:   u.GetFollowers(),
		PublicGists: u.GetPublicGists(),
	}, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
