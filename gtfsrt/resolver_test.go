package gtfsrt

import (
	"context"
	"errors"
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// validFeedBytes builds a minimal decodable trip-updates feed.
func validFeedBytes(t *testing.T, tripID string) []byte {
	t.Helper()
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(uint64(time.Now().Unix())),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String(tripID)},
				},
			},
		},
	}
	b, err := proto.Marshal(fm)
	require.NoError(t, err)
	return b
}

func newTestResolver() *Resolver {
	f := newTestFetcher()
	return NewResolver(f, zap.NewNop())
}

func TestResolver_StopsAtFirstSuccess(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	r := newTestResolver()

	urlA := "https://rt.example.org/a"
	urlB := "https://rt.example.org/b"
	urlC := "https://rt.example.org/c"
	httpmock.RegisterResponder("GET", urlA, httpmock.NewStringResponder(503, ""))
	httpmock.RegisterResponder("GET", urlB, httpmock.NewBytesResponder(200, validFeedBytes(t, "trip-7")))
	httpmock.RegisterResponder("GET", urlC, httpmock.NewBytesResponder(200, validFeedBytes(t, "trip-9")))

	fm, err := r.Resolve(context.Background(), FeedTripUpdates, []string{urlA, urlB, urlC})

	require.NoError(t, err)
	require.NotNil(t, fm)
	require.Len(t, fm.Entity, 1)
	assert.Equal(t, "trip-7", fm.Entity[0].TripUpdate.Trip.GetTripId())

	calls := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, calls["GET "+urlA])
	assert.Equal(t, 1, calls["GET "+urlB])
	assert.Equal(t, 0, calls["GET "+urlC], "candidates after the first success must not be contacted")
}

func TestResolver_ExhaustedCollectsAllAttemptsInOrder(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	r := newTestResolver()

	urlA := "https://rt.example.org/a"
	urlB := "https://rt.example.org/b"
	urlC := "https://rt.example.org/c"
	httpmock.RegisterResponder("GET", urlA, httpmock.NewStringResponder(404, ""))
	httpmock.RegisterResponder("GET", urlB, httpmock.NewErrorResponder(errors.New("no such host")))
	httpmock.RegisterResponder("GET", urlC, httpmock.NewStringResponder(503, ""))

	fm, err := r.Resolve(context.Background(), FeedVehiclePositions, []string{urlA, urlB, urlC})

	assert.Nil(t, fm)
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, FeedVehiclePositions, exhausted.Feed)
	require.Len(t, exhausted.Attempts, 3)
	assert.Equal(t, urlA, exhausted.Attempts[0].URL)
	assert.Equal(t, OutcomeHTTPError, exhausted.Attempts[0].Kind)
	assert.Equal(t, urlB, exhausted.Attempts[1].URL)
	assert.Equal(t, OutcomeTransportError, exhausted.Attempts[1].Kind)
	assert.Equal(t, urlC, exhausted.Attempts[2].URL)
	assert.Equal(t, 503, exhausted.Attempts[2].Status)
	assert.Contains(t, exhausted.Error(), "tried 3 URLs")
	assert.Contains(t, exhausted.Error(), "404, error, 503")
}

func TestResolver_DecodeFailureFallsBackToNextCandidate(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	r := newTestResolver()

	urlA := "https://rt.example.org/a"
	urlB := "https://rt.example.org/b"
	httpmock.RegisterResponder("GET", urlA, httpmock.NewBytesResponder(200, []byte{0xff, 0xff, 0xff}))
	httpmock.RegisterResponder("GET", urlB, httpmock.NewBytesResponder(200, validFeedBytes(t, "trip-12")))

	fm, err := r.Resolve(context.Background(), FeedTripUpdates, []string{urlA, urlB})

	require.NoError(t, err)
	assert.Equal(t, "trip-12", fm.Entity[0].TripUpdate.Trip.GetTripId())

	calls := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, calls["GET "+urlA])
	assert.Equal(t, 1, calls["GET "+urlB])
}

func TestResolver_DecodeFailureOnEveryCandidateIsExhaustion(t *testing.T) {
	defer httpmock.DeactivateAndReset()
	r := newTestResolver()

	urlA := "https://rt.example.org/a"
	httpmock.RegisterResponder("GET", urlA, httpmock.NewBytesResponder(200, []byte{0xff, 0xff, 0xff}))

	fm, err := r.Resolve(context.Background(), FeedServiceAlerts, []string{urlA})

	assert.Nil(t, fm, "undecodable bytes must never count as success")
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Attempts, 1)
	assert.Equal(t, OutcomeDecodeError, exhausted.Attempts[0].Kind)
	assert.Equal(t, "invalid-feed", exhausted.Attempts[0].StatusToken())
}
