package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Decode parses raw GTFS-Realtime protobuf bytes into a FeedMessage.
func Decode(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decoding GTFS-RT feed: %w", err)
	}
	return &fm, nil
}
