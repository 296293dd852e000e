package activity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gh "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return NewService(client, nil), srv
}

func TestListEvents(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"type": "PushEvent", "repo": {"name": "octocat/a"}, "payload": {"commits": [{}, {}]}},
			{"type": "IssuesEvent", "repo": {"name": "octocat/b"}, "payload": {"action": 7}},
			{"type": "GollumEvent", "repo": {"name": "octocat/c"}, "payload": {}},
			{"type": "WatchEvent", "repo": {"name": "octocat/d"}, "payload": {"action": "started"}}
		]`))
	})

	events, err := svc.ListEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, KindPush, events[0].Kind)
	assert.Equal(t, 2, *events[0].Payload.CommitCount)
	assert.Equal(t, KindUnknown, events[1].Kind)
	assert.Equal(t, "GollumEvent", events[1].Type)
	assert.Equal(t, KindWatch, events[2].Kind)
}

func TestListEventsEmpty(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	events, err := svc.ListEvents(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListEventsErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    error
		message string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`, kind: ErrNotFound, message: "username octocat not found"},
		{name: "server error", status: http.StatusBadGateway, body: `{"message":"bad gateway"}`, kind: ErrServer, message: "server error (502)"},
		{name: "malformed json", status: http.StatusOK, body: `[{"type":`, kind: ErrDecode, message: "decode response"},
		{name: "wrong shape", status: http.StatusOK, body: `{"type":"PushEvent"}`, kind: ErrDecode, message: "decode response"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"message":"Forbidden"}`, kind: ErrUnexpectedStatus, message: "unexpected status 403"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			events, err := svc.ListEvents(context.Background(), "octocat")
			require.Error(t, err)
			assert.Nil(t, events)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
			assert.Contains(t, err.Error(), tc.message)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "octocat", apiErr.User)
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}
}

func TestListEventsNetworkError(t *testing.T) {
	svc, srv := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := svc.ListEvents(context.Background(), "octocat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork), "got %v", err)

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))
}

func TestProfile(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		_, _ = w.Write([]byte(`{"login":"OctoCat","followers":12,"public_gists":4}`))
	})
	profile, err := svc.Profile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, Profile{Login: "OctoCat", Followers: 12, PublicGists: 4}, profile)
}

func TestProfileNotFound(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	_, err := svc.Profile(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

type fakeEvents struct {
	events []*gh.Event
	err    error
	user   string
	public bool
}

func (f *fakeEvents) ListEventsPerformedByUser(_ context.Context, user string, publicOnly bool, _ *gh.ListOptions) ([]*gh.Event, *gh.Response, error) {
	f.user = user
	f.public = publicOnly
	return f.events, nil, f.err
}

func TestListEventsUsesAllEvents(t *testing.T) {
	fake := &fakeEvents{events: []*gh.Event{{Type: gh.String("ForkEvent"), Repo: &gh.Repository{Name: gh.String("o/r")}}}}
	svc := &Service{Events: fake}

	events, err := svc.ListEvents(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", fake.user)
	assert.False(t, fake.public)
	assert.Equal(t, []Event{{Repo: "o/r", Kind: KindFork, Type: "ForkEvent"}}, events)
}

func TestListEventsTransportErrorWithoutResponse(t *testing.T) {
	svc := &Service{Events: &fakeEvents{err: context.DeadlineExceeded}}
	_, err := svc.ListEvents(context.Background(), "octocat")
	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, strings.Contains(err.Error(), "octocat"))
}

func TestListEventsDropsRecordsWithoutRepo(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"type": "WatchEvent", "payload": {}},
			{"type": "ForkEvent", "repo": null, "payload": {}},
			{"type": "PushEvent", "repo": {"name": "o/r"}, "payload": {"commits": [{}]}}
		]`))
	})

	events, err := svc.ListEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "o/r", events[0].Repo)

	var out strings.Builder
	r := &Renderer{Out: &out}
	require.NoError(t, r.RenderEvents("octocat", events))
	assert.Equal(t, " - Pushed 1 commits to o/r.\n", out.String())
}
