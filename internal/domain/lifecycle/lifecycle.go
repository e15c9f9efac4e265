// Package lifecycle holds timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step (DB ping, HTTP shutdown, publisher flush).
const DefaultTimeout = 10 * time.Second
