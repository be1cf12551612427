// Package gtfsrt fetches and decodes GTFS-Realtime protobuf feeds.
//
// The transit authority's realtime endpoints are undocumented and have moved
// more than once, so the package works against ordered candidate URL lists:
//   - Fetcher performs one classified GET per candidate
//   - Decode turns raw bytes into a FeedMessage
//   - Resolver falls back through candidates until one yields a decodable feed
package gtfsrt
