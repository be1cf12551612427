package gtfsrtproxy

// ServiceName and Version identify the proxy in the service metadata
// endpoint and in the User-Agent header sent upstream.
const (
	ServiceName = "gtfsrt-proxy"
	Version     = "0.3.1"
)

// UserAgent is sent on every outbound fetch.
const UserAgent = ServiceName + "/" + Version
