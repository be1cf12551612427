package gtfsrtproxy

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfsrt-proxy/config"
	"github.com/theoremus-urban-solutions/gtfsrt-proxy/gtfsrt"
)

// Server wires the HTTP surface: the three realtime feed endpoints, the URL
// discovery endpoint and the static informational endpoints. Each request is
// self-contained; the server holds no mutable state between requests.
type Server struct {
	app      *fiber.App
	cfg      config.AppConfig
	fetcher  *gtfsrt.Fetcher
	resolver *gtfsrt.Resolver
	logger   *zap.Logger
}

// NewServer builds the fiber app with all routes and middleware configured.
func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	fetcher := gtfsrt.NewFetcher(cfg.Fetch.Timeout(), UserAgent, logger)
	s := &Server{
		cfg:      cfg,
		fetcher:  fetcher,
		resolver: gtfsrt.NewResolver(fetcher, logger),
		logger:   logger,
	}

	app := fiber.New(fiber.Config{
		AppName:               ServiceName,
		DisableStartupMessage: true,
	})
	app.Use(requestid.New())
	app.Use(recoverMiddleware(logger))
	app.Use(requestLogger(logger))
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))

	app.Get("/", s.handleRoot)
	app.Get("/test", s.handleTest)
	app.Get("/static/feeds", s.handleStaticFeeds)
	app.Get("/realtime/trip-updates", s.handleFeed(gtfsrt.FeedTripUpdates))
	app.Get("/realtime/vehicle-positions", s.handleFeed(gtfsrt.FeedVehiclePositions))
	app.Get("/realtime/service-alerts", s.handleFeed(gtfsrt.FeedServiceAlerts))
	app.Get("/discover-urls", s.handleDiscoverURLs)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app = app
	return s
}

// candidates returns the configured candidate URL list for a feed type.
func (s *Server) candidates(feed gtfsrt.Feed) []string {
	switch feed {
	case gtfsrt.FeedTripUpdates:
		return s.cfg.Candidates.TripUpdates
	case gtfsrt.FeedVehiclePositions:
		return s.cfg.Candidates.VehiclePositions
	case gtfsrt.FeedServiceAlerts:
		return s.cfg.Candidates.ServiceAlerts
	}
	return nil
}

// Listen starts serving on the configured port and blocks.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info("server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}
