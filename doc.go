// Package gtfsrtproxy implements a read-only HTTP proxy for a transit
// authority's GTFS-Realtime feeds. It fetches the binary protobuf snapshots
// upstream, falling back through a configured list of candidate URLs per
// feed type, decodes them, and re-serves the decoded content as JSON.
package gtfsrtproxy
