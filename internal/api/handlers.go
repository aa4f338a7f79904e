package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/greeting-api/internal/pkg/httputil"
)

const (
	greetingName = "Graheet"
	location     = "Dehradun"
)

// Greeting is the payload served at the root path. Field order is the
// serialized key order.
type Greeting struct {
	Name     string `json:"name"`
	Location string `json:"Location"`
}

// Echo carries a path segment back to the caller.
type Echo struct {
	Hi       string `json:"hi"`
	Location string `json:"Location"`
}

// HandleRoot returns the static greeting.
//
//	GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, Greeting{Name: greetingName, Location: location})
}

// HandleEcho returns the {data} path segment verbatim.
//
//	GET /{data}
func HandleEcho(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, Echo{Hi: pathSegment(r, "data"), Location: location})
}

// pathSegment returns the decoded value of a URL parameter. chi matches
// against RawPath when the request carried escapes that Path cannot
// represent (such as %2F), leaving those params still encoded.
func pathSegment(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
