package reason

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetKeepsCatalogueOrderAndDeduplicates(t *testing.T) {
	s := NewSet(Blur, BadPose, Blur, OutOfFrame)
	require.Equal(t, Set{BadPose, OutOfFrame, Blur}, s)

	s2 := s.With(NoLandmarks)
	require.Equal(t, Set{NoLandmarks, BadPose, OutOfFrame, Blur}, s2)
	require.Len(t, s, 3, "With must not modify the receiver")
}

func TestIssuesErrorsFirst(t *testing.T) {
	s := NewSet(RollTilt, SideDisabled)
	issues := s.Issues()
	require.Equal(t, []string{SideDisabled.Message(), RollTilt.Message()}, issues)
}

func TestUnknownCodeIsInfoAndSortsLast(t *testing.T) {
	custom := Code("custom")
	require.False(t, Known(custom))
	require.Equal(t, SeverityInfo, custom.Severity())
	s := NewSet(custom, ManualAdjusted)
	require.Equal(t, Set{ManualAdjusted, custom}, s)
}
