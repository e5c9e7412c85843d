package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupingState_String(t *testing.T) {
	tests := []struct {
		state GroupingState
		want  string
	}{
		{StateUnassigned, "Unassigned"},
		{StateAssigned, "Assigned"},
		{StateLocked, "Locked"},
		{GroupingState(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.state.String())
		})
	}
}
