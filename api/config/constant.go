package config

const (
	// BackendSimulated and BackendLive are the accepted BACKEND values. The
	// backend is always chosen explicitly from configuration, never inferred
	// from which keys happen to be set.
	BackendSimulated = "simulated"
	BackendLive      = "live"

	// DefaultAPIVersion is the Stripe API version pinned when none is
	// configured.
	DefaultAPIVersion = "2023-10-16"

	// DefaultTimeoutSeconds bounds each Stripe HTTP request.
	DefaultTimeoutSeconds = 80

	// DefaultMaxNetworkRetries is how often the SDK retries a failed request.
	DefaultMaxNetworkRetries = 3
)
