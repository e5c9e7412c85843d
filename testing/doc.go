// Package testing provides test utilities for the grpy library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for testing the JetStream-backed partition store. It
// follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - NewTestLogger: types.Logger that writes to the test log
//
// Example usage:
//
//	import (
//	    "testing"
//	    grpytest "github.com/t73fde/grpy/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := grpytest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
