package github

import "net/http"

// headerTransport stamps the media type, API version and user agent on
// every outgoing request.
type headerTransport struct {
	apiVersion string
	userAgent  string
	base       http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Accept", mediaTypeJSON)
	out.Header.Set(headerAPIVersion, t.apiVersion)
	out.Header.Set("User-Agent", t.userAgent)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(out)
}
