package gtfsrt

// Feed identifies one of the three GTFS-Realtime feed types served by the proxy.
type Feed string

const (
	FeedTripUpdates      Feed = "trip-updates"
	FeedVehiclePositions Feed = "vehicle-positions"
	FeedServiceAlerts    Feed = "service-alerts"
)

// Feeds lists all feed types in serving order.
var Feeds = []Feed{FeedTripUpdates, FeedVehiclePositions, FeedServiceAlerts}
