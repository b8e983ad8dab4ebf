package cohort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysCoverEveryCombination(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 32)
	require.Len(t, base, 60)
	seen := map[Key]bool{}
	for _, k := range keys {
		require.False(t, seen[k], k.String())
		seen[k] = true
		require.True(t, Known(k))
		require.Equal(t, len(base), For(k).Len(), "every table carries every metric")
	}
}

func TestLaterLayersOverride(t *testing.T) {
	young := Baseline("east_asian", "male", "under_30")
	old := Baseline("east_asian", "male", "30_plus")

	r, ok := young.Get("eyeAspectRatio")
	require.True(t, ok)
	require.Equal(t, 0.28, r.Ideal, "ethnicity overrides base")

	r, _ = old.Get("eyeAspectRatio")
	require.Equal(t, 0.30, r.Ideal, "age overrides ethnicity")

	r, _ = young.Get("fWHR")
	require.Equal(t, 1.95, r.Ideal)
	r, _ = Baseline("east_asian", "female", "under_30").Get("fWHR")
	require.Equal(t, 1.8, r.Ideal)

	r, _ = young.Get("chinAngle")
	require.Equal(t, 104.0, r.Ideal)
	r, _ = young.Get("sLineLowerLip")
	require.Equal(t, base["sLineLowerLip"], r)

	r, _ = young.Get("symmetry")
	require.Equal(t, base["symmetry"], r)
}

func TestUnknownFieldsSkipTheirLayer(t *testing.T) {
	unknown := Baseline("", "", "")
	require.False(t, Known(Key{}))
	for id, want := range base {
		got, ok := unknown.Get(id)
		require.True(t, ok)
		require.Equal(t, want, got, id)
	}

	partial := Baseline("martian", "female", "")
	r, _ := partial.Get("gonialAngleAvg")
	require.Equal(t, 127.0, r.Ideal)
	r, _ = partial.Get("nasalIndex")
	require.Equal(t, base["nasalIndex"], r)
}

func TestTablesAreNotShared(t *testing.T) {
	a := Baseline("european", "male", "under_30")
	b := Baseline("european", "male", "under_30")
	require.Equal(t, a.IDs(), b.IDs())
	// Building an ad hoc table must not leak into the base layer.
	_ = Baseline("", "female", "")
	r, _ := Baseline("", "", "").Get("fWHR")
	require.Equal(t, 1.85, r.Ideal)
}
