package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetworkUnreachable marks connection-level failures (DNS, refused
// connections, timeouts). During bootstrap it reads as "not authenticated";
// during editing it reads as "save failed".
var ErrNetworkUnreachable = errors.New("gateway: server unreachable")

// RequestFailed is any non-2xx HTTP response. Payload carries the backend's
// JSON error body when there is one; a body that fails to parse leaves the
// payload empty rather than masking the HTTP failure with a decode error.
type RequestFailed struct {
	Status  int
	Payload map[string]interface{}
}

func (e *RequestFailed) Error() string {
	if d := e.Detail(); d != "" {
		return fmt.Sprintf("gateway: request failed: %d (%s)", e.Status, d)
	}
	return fmt.Sprintf("gateway: request failed: %d", e.Status)
}

// Detail returns the backend's human-readable error message, if it sent one.
func (e *RequestFailed) Detail() string {
	for _, key := range []string{"detail", "error", "msg"} {
		if v, ok := e.Payload[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// FailureMessage turns a gateway error into the single user-facing line the
// interactive commands show. Bootstrap never calls this; its failures degrade
// silently.
func FailureMessage(err error) string {
	var rf *RequestFailed
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetworkUnreachable):
		return "cannot reach the server; check that the backend is running"
	case errors.As(err, &rf):
		if d := rf.Detail(); d != "" {
			return d
		}
		return fmt.Sprintf("the server rejected the request (HTTP %d)", rf.Status)
	default:
		return err.Error()
	}
}

// IsBadRequest reports whether err is an HTTP 400 response, which the login
// flow presents as bad credentials.
func IsBadRequest(err error) bool {
	var rf *RequestFailed
	return errors.As(err, &rf) && rf.Status == http.StatusBadRequest
}
