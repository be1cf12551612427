package gtfsrtproxy

import (
	"strconv"

	"github.com/theoremus-urban-solutions/gtfsrt-proxy/gtfsrt"
)

// errorResponse is the generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// attemptStatus describes one failed candidate in a feed error response.
type attemptStatus struct {
	URL     string `json:"url"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// feedErrorResponse is returned with HTTP 404 when every candidate URL for a
// feed failed. Attempts are listed in candidate-list order, one entry per
// attempted URL.
type feedErrorResponse struct {
	Error    string          `json:"error"`
	Detail   string          `json:"detail"`
	Attempts []attemptStatus `json:"attempts"`
}

func attemptStatusFromOutcome(o gtfsrt.Outcome) attemptStatus {
	switch o.Kind {
	case gtfsrt.OutcomeHTTPError:
		return attemptStatus{URL: o.URL, Status: strconv.Itoa(o.Status), Message: o.StatusText}
	case gtfsrt.OutcomeDecodeError:
		return attemptStatus{URL: o.URL, Status: "invalid-feed", Message: o.Message}
	default:
		return attemptStatus{URL: o.URL, Status: "error", Message: o.Message}
	}
}
