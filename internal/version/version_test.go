package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(v, tag, commit string) {
		Version, GitTag, GitCommit = v, tag, commit
	}(Version, GitTag, GitCommit)

	Version, GitTag, GitCommit = "", "", ""
	require.Equal(t, UnknownVersion, AppVersion())
	require.Equal(t, "b64stream/unknown", UserAgent())

	GitTag = "v1.2.0"
	require.Equal(t, "v1.2.0", AppVersion())

	Version = "1.2.1"
	GitCommit = "0b5ed7a"
	require.Equal(t, "1.2.1", AppVersion())
	require.Equal(t, "b64stream/1.2.1 (0b5ed7a)", UserAgent())
}
