package gtfsrtproxy

import "github.com/gofiber/fiber/v2"

// handleRoot serves service metadata.
func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"service":     ServiceName,
		"version":     Version,
		"description": "Read-only proxy that decodes the transit authority's GTFS-Realtime feeds and re-serves them as JSON.",
		"endpoints": []string{
			"/",
			"/test",
			"/static/feeds",
			"/realtime/trip-updates",
			"/realtime/vehicle-positions",
			"/realtime/service-alerts",
			"/discover-urls",
			"/metrics",
		},
	})
}

// handleTest is a static liveness payload.
func (s *Server) handleTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "proxy is alive",
	})
}

// handleStaticFeeds points clients at the authority's published static GTFS
// datasets. Nothing here is fetched live; see /realtime/* for live feeds.
func (s *Server) handleStaticFeeds(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"description": "Static GTFS datasets published by the transit authority. Scheduled data only; realtime snapshots are served under /realtime/.",
		"feeds": []fiber.Map{
			{
				"name":   "scheduled-service",
				"format": "gtfs-zip",
				"url":    "https://opendata.citytransit.org/gtfs/google_transit.zip",
			},
		},
	})
}
