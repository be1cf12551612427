package gtfsrt

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// OutcomeKind classifies the result of a single fetch attempt.
type OutcomeKind int

const (
	// OutcomeSuccess: 2xx response, body bytes available.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeHTTPError: upstream responded with a non-2xx status.
	OutcomeHTTPError
	// OutcomeTransportError: DNS, dial or timeout failure before a response.
	OutcomeTransportError
	// OutcomeDecodeError: bytes received but not a valid GTFS-RT feed.
	OutcomeDecodeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeDecodeError:
		return "decode_error"
	}
	return "unknown"
}

// Outcome is the result of one fetch attempt against one candidate URL.
// Body is set only for OutcomeSuccess.
type Outcome struct {
	URL        string
	Kind       OutcomeKind
	Status     int
	StatusText string
	Message    string
	Body       []byte
}

// Working reports whether the attempt yielded decodable bytes.
func (o Outcome) Working() bool { return o.Kind == OutcomeSuccess }

// Fetcher performs single GET requests against candidate feed URLs. It never
// retries: trying alternative URLs is the Resolver's job.
type Fetcher struct {
	client *resty.Client
	logger *zap.Logger
}

// NewFetcher creates a Fetcher with a hard per-request timeout and a fixed
// identifying User-Agent header.
func NewFetcher(timeout time.Duration, userAgent string, logger *zap.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Fetcher{client: client, logger: logger}
}

// HTTPClient returns the underlying HTTP client. Tests install a mock
// transport through it.
func (f *Fetcher) HTTPClient() *http.Client { return f.client.GetClient() }

// Fetch GETs one candidate URL and classifies the result. A non-2xx status
// and a transport failure are ordinary outcomes, not errors: the caller
// decides whether to move on to the next candidate.
func (f *Fetcher) Fetch(ctx context.Context, url string) Outcome {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		f.logger.Warn("upstream fetch failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return Outcome{URL: url, Kind: OutcomeTransportError, Message: err.Error()}
	}
	if !resp.IsSuccess() {
		f.logger.Debug("upstream returned non-2xx",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
		)
		return Outcome{
			URL:        url,
			Kind:       OutcomeHTTPError,
			Status:     resp.StatusCode(),
			StatusText: http.StatusText(resp.StatusCode()),
		}
	}
	return Outcome{
		URL:        url,
		Kind:       OutcomeSuccess,
		Status:     resp.StatusCode(),
		StatusText: http.StatusText(resp.StatusCode()),
		Body:       resp.Body(),
	}
}
