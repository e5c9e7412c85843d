package grpy

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/t73fde/grpy/types"
)

func TestMakeCode(t *testing.T) {
	begin := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	final := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	grouping := types.Grouping{
		Key:          "course-1",
		Name:         "Course 1",
		BeginDate:    begin,
		FinalDate:    final,
		MaxGroupSize: 6,
		Policy:       "RD",
	}

	t.Run("stable for the same grouping", func(t *testing.T) {
		first := MakeCode(grouping, false)
		second := MakeCode(grouping, false)

		require.Equal(t, first, second)
		require.Len(t, first, 6)
	})

	t.Run("code uses the restricted alphabet", func(t *testing.T) {
		code := MakeCode(grouping, false)
		for _, r := range code {
			require.True(t, strings.ContainsRune(codeAlphabet, r),
				"character %q outside alphabet", r)
		}
	})

	t.Run("differs for different groupings", func(t *testing.T) {
		other := grouping
		other.Name = "Course 2"

		require.NotEqual(t, MakeCode(grouping, false), MakeCode(other, false))
	})

	t.Run("policy change yields a different code", func(t *testing.T) {
		other := grouping
		other.Policy = "ID"

		require.NotEqual(t, MakeCode(grouping, false), MakeCode(other, false))
	})

	t.Run("close date feeds the code", func(t *testing.T) {
		closeDate := final.Add(24 * time.Hour)
		other := grouping
		other.CloseDate = &closeDate

		require.NotEqual(t, MakeCode(grouping, false), MakeCode(other, false))
	})

	t.Run("unique codes differ between calls", func(t *testing.T) {
		first := MakeCode(grouping, true)
		second := MakeCode(grouping, true)

		require.Len(t, first, 6)
		require.NotEqual(t, first, second)
	})
}
