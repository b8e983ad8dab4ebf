package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	old := GitCommit
	t.Cleanup(func() { GitCommit = old })
	GitCommit = "abc1234"

	require.Equal(t, "facescore "+Version+" (commit abc1234, built "+BuildTime+")", String())
}
