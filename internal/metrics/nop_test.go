package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t73fde/grpy/types"
)

func TestNopMetrics(t *testing.T) {
	collector := NewNop()
	require.NotNil(t, collector)

	// All methods must be callable without side effects or panics.
	collector.RecordAssignment("RD", 3, 13, 0.001)
	collector.RecordAssignmentError("assign", "unknown_policy")
	collector.RecordStateTransition(types.StateUnassigned, types.StateAssigned)
	collector.RecordStoreOperation("save", 0.002)
}
