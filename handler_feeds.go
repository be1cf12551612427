package gtfsrtproxy

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/theoremus-urban-solutions/gtfsrt-proxy/gtfsrt"
)

// feedMarshaler renders decoded feeds with the schema's own field names so
// downstream consumers see the exact GTFS-RT structure.
var feedMarshaler = protojson.MarshalOptions{UseProtoNames: true}

// handleFeed returns the handler for one realtime feed endpoint. The same
// resolution flow serves all three feed types; only the candidate list
// differs.
func (s *Server) handleFeed(feed gtfsrt.Feed) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fm, err := s.resolver.Resolve(c.Context(), feed, s.candidates(feed))
		if err != nil {
			var exhausted *gtfsrt.ExhaustedError
			if errors.As(err, &exhausted) {
				attempts := make([]attemptStatus, 0, len(exhausted.Attempts))
				for _, a := range exhausted.Attempts {
					attempts = append(attempts, attemptStatusFromOutcome(a))
				}
				return c.Status(fiber.StatusNotFound).JSON(feedErrorResponse{
					Error:    "no data available for " + string(feed),
					Detail:   exhausted.Error(),
					Attempts: attempts,
				})
			}
			s.logger.Error("feed resolution failed",
				zap.String("feed", string(feed)),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
				Error: "internal server error",
			})
		}

		body, err := feedMarshaler.Marshal(fm)
		if err != nil {
			s.logger.Error("feed serialization failed",
				zap.String("feed", string(feed)),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
				Error: "internal server error",
			})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
}
