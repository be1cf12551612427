package gtfsrtproxy

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/theoremus-urban-solutions/gtfsrt-proxy/gtfsrt"
)

// probeResult is the per-URL entry in the discovery report.
type probeResult struct {
	URL        string `json:"url"`
	Feed       string `json:"feed"`
	Working    bool   `json:"working"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"status_text,omitempty"`
	Error      string `json:"error,omitempty"`
}

// discoveryReport lists the status of every configured candidate URL plus
// the first working URL per feed type.
type discoveryReport struct {
	ProbedAt    string            `json:"probed_at"`
	Results     []probeResult     `json:"results"`
	Recommended map[string]string `json:"recommended"`
}

// noWorkingURL is reported for a feed with no reachable candidate.
const noWorkingURL = "None found"

// handleDiscoverURLs probes every candidate URL across all feed types and
// reports which ones currently respond. Probes are independent, so they run
// concurrently; the report keeps the configured list order regardless of
// completion order. The endpoint is diagnostic: it bypasses the resolver on
// purpose, because it wants the status of every URL, not just the first
// success.
func (s *Server) handleDiscoverURLs(c *fiber.Ctx) error {
	type probe struct {
		feed gtfsrt.Feed
		url  string
	}
	var probes []probe
	for _, feed := range gtfsrt.Feeds {
		for _, url := range s.candidates(feed) {
			probes = append(probes, probe{feed: feed, url: url})
		}
	}

	ctx := c.Context()
	results := make([]probeResult, len(probes))
	var wg sync.WaitGroup
	for i, p := range probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			outcome := s.fetcher.Fetch(ctx, p.url)
			gtfsrt.RecordProbe(p.feed, outcome.Kind)
			results[i] = probeResultFromOutcome(p.feed, outcome)
		}(i, p)
	}
	wg.Wait()

	// Recommended URL per feed: first working candidate in list order.
	recommended := make(map[string]string, len(gtfsrt.Feeds))
	idx := 0
	for _, feed := range gtfsrt.Feeds {
		recommended[string(feed)] = noWorkingURL
		for range s.candidates(feed) {
			if results[idx].Working && recommended[string(feed)] == noWorkingURL {
				recommended[string(feed)] = results[idx].URL
			}
			idx++
		}
	}

	return c.JSON(discoveryReport{
		ProbedAt:    time.Now().UTC().Format(time.RFC3339),
		Results:     results,
		Recommended: recommended,
	})
}

func probeResultFromOutcome(feed gtfsrt.Feed, o gtfsrt.Outcome) probeResult {
	r := probeResult{URL: o.URL, Feed: string(feed), Working: o.Working()}
	switch o.Kind {
	case gtfsrt.OutcomeSuccess, gtfsrt.OutcomeHTTPError:
		r.Status = o.Status
		r.StatusText = o.StatusText
	default:
		r.Error = o.Message
	}
	return r
}
