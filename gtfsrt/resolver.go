package gtfsrt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"go.uber.org/zap"
)

// ExhaustedError reports that every candidate URL for a feed failed. It
// carries one outcome per attempted candidate, in candidate-list order.
type ExhaustedError struct {
	Feed     Feed
	Attempts []Outcome
}

func (e *ExhaustedError) Error() string {
	statuses := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		statuses = append(statuses, a.StatusToken())
	}
	return fmt.Sprintf("no working upstream URL for %s: tried %d URLs, statuses: %s",
		e.Feed, len(e.Attempts), strings.Join(statuses, ", "))
}

// StatusToken renders one short diagnostic token for a failed attempt:
// the numeric status for HTTP errors, "invalid-feed" for decode failures,
// "error" for transport failures.
func (o Outcome) StatusToken() string {
	switch o.Kind {
	case OutcomeHTTPError:
		return strconv.Itoa(o.Status)
	case OutcomeDecodeError:
		return "invalid-feed"
	case OutcomeSuccess:
		return strconv.Itoa(o.Status)
	}
	return "error"
}

// Resolver tries a feed's candidate URLs strictly in configured order and
// returns the first successfully decoded feed.
type Resolver struct {
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewResolver creates a Resolver on top of a Fetcher.
func NewResolver(fetcher *Fetcher, logger *zap.Logger) *Resolver {
	return &Resolver{fetcher: fetcher, logger: logger}
}

// Resolve walks the candidates in order and returns the first decodable
// feed. Candidates after the first success are never contacted. A response
// that fails protobuf decoding counts as a failed candidate and resolution
// moves on to the next URL. When the list is exhausted the returned error is
// an *ExhaustedError holding one outcome per candidate.
func (r *Resolver) Resolve(ctx context.Context, feed Feed, candidates []string) (*gtfsrtpb.FeedMessage, error) {
	attempts := make([]Outcome, 0, len(candidates))
	for _, url := range candidates {
		outcome := r.fetcher.Fetch(ctx, url)
		if outcome.Kind == OutcomeSuccess {
			fm, err := Decode(outcome.Body)
			if err == nil {
				recordFetch(feed, OutcomeSuccess)
				r.logger.Info("feed resolved",
					zap.String("feed", string(feed)),
					zap.String("url", url),
					zap.Int("attempt", len(attempts)+1),
				)
				return fm, nil
			}
			outcome = Outcome{URL: url, Kind: OutcomeDecodeError, Message: err.Error()}
			r.logger.Warn("upstream bytes are not a valid feed",
				zap.String("feed", string(feed)),
				zap.String("url", url),
				zap.Error(err),
			)
		}
		recordFetch(feed, outcome.Kind)
		attempts = append(attempts, outcome)
	}
	err := &ExhaustedError{Feed: feed, Attempts: attempts}
	r.logger.Warn("all candidate URLs failed",
		zap.String("feed", string(feed)),
		zap.Int("candidates", len(candidates)),
	)
	return nil, err
}
