// Package testutils provides shared helpers for tests: a silenced logger
// and common timing constants.
package testutils

import "time"

// TestTimeout is the default timeout for operations in tests.
const TestTimeout = 5 * time.Second

// TestInterval is the default interval for polling in tests.
const TestInterval = 100 * time.Millisecond
