// Package timeouts defines shared timeout constants used by teamdocs servers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreOpen caps how long a command waits for storage to become ready.
const StoreOpen = 10 * time.Second
