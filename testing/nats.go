package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StartEmbeddedNATS starts an embedded NATS server with JetStream enabled for testing.
//
// The server runs in-process with JetStream enabled and stores data in a temporary
// directory that is automatically cleaned up when the test completes. This provides
// a fast, reliable way to test NATS-dependent code without external dependencies.
//
// Benefits over testcontainers:
//   - Zero external dependencies (no Docker required)
//   - Fast startup (milliseconds vs seconds)
//   - Works everywhere Go works (CI/CD friendly)
//   - Perfect for parallel test execution
//   - Automatic cleanup via t.Cleanup()
//
// The server uses a random available port to avoid conflicts in parallel tests.
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *server.Server: The embedded NATS server instance
//   - *nats.Conn: Connected NATS client (closed automatically on test completion)
//
// Example:
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := grpytest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	    // Server and connection are automatically cleaned up
//	}
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	// Create server with random port and JetStream enabled
	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,          // Use random available port
		JetStream: true,        // Enable JetStream for KV stores
		StoreDir:  t.TempDir(), // Use test temp dir (auto-cleanup)
		LogFile:   "",          // Disable file logging
		Debug:     false,       // Disable debug output
		Trace:     false,       // Disable trace output
		NoLog:     true,        // Suppress all server logs in tests
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		t.Fatalf("Failed to create embedded NATS server: %v", err)
	}

	// Start server in background goroutine
	go ns.Start()

	// Wait for server to be ready (with timeout)
	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("Embedded NATS server not ready within timeout")
	}

	// Connect client to the server
	nc, err := nats.Connect(ns.ClientURL(),
		nats.Timeout(2*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
	)
	if err != nil {
		ns.Shutdown()
		t.Fatalf("Failed to connect to embedded NATS server: %v", err)
	}

	// Register cleanup handlers (executed in reverse order)
	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// CreateJetStreamKV creates a JetStream KV bucket for testing.
//
// This is a convenience wrapper for creating KV buckets with sensible defaults
// for testing purposes. Uses the new jetstream.KeyValue interface.
//
// Parameters:
//   - t: Testing context
//   - nc: NATS connection (from StartEmbeddedNATS)
//   - bucketName: Name of the KV bucket to create
//
// Returns:
//   - jetstream.KeyValue: The created KV bucket interface
//
// Example:
//
//	func TestNATSStore(t *testing.T) {
//	    _, nc := grpytest.StartEmbeddedNATS(t)
//	    kv := grpytest.CreateJetStreamKV(t, nc, "grpy-partitions")
//	    store := natskv.NewStore(kv, "")
//	    // Use store for testing
//	}
func CreateJetStreamKV(t *testing.T, nc *nats.Conn, bucketName string) jetstream.KeyValue {
	t.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("Failed to get JetStream context: %v", err)
	}

	ctx := t.Context()
	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("Test KV bucket: %s", bucketName),
		TTL:         1 * time.Minute, // Short TTL for testing
		Storage:     jetstream.MemoryStorage,
		Replicas:    1,
	})
	if err != nil {
		t.Fatalf("Failed to create KV bucket %s: %v", bucketName, err)
	}

	return kv
}
