package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultPort is the rendezvous port for both roles.  There is no
	// flag to change it.
	DefaultPort = 8080

	// ListenBacklog is the pending-connection queue of the listener.
	// The chat is strictly two-party.
	ListenBacklog = 1

	// MaxDelivery is the largest chunk read from or written to the
	// stream in one call, in bytes.
	MaxDelivery = 4096

	// DefaultAddrPolicy is how a dialer treats the typed peer address.
	DefaultAddrPolicy = AddrStrict

	// LenientFallbackAddr is what an unparsable address turns into
	// under the lenient policy.
	LenientFallbackAddr = "0.0.0.0"
)
