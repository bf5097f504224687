package antlr

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	fn()

	assert.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	return string(out)
}

func TestCheckVersionSilentOnMatchingMinor(t *testing.T) {
	out := captureStderr(t, func() {
		RuntimeMetaDataInstance.CheckVersion("4.13.0", "4.13.1")
	})
	assert.Empty(t, out)
}

func TestCheckVersionWarnsOnMismatchedMinor(t *testing.T) {
	out := captureStderr(t, func() {
		RuntimeMetaDataInstance.CheckVersion("4.12.0", "4.13.1")
	})
	lines := 0
	for _, c := range out {
		if c == '\n' {
			lines++
		}
	}
	assert.Equal(t, 1, lines)
	assert.Contains(t, out, "4.12.0")
	assert.Contains(t, out, RuntimeVersion)
}

func TestMajorMinorStripsPatchAndSuffix(t *testing.T) {
	assert.Equal(t, "4.13", majorMinor("4.13.1"))
	assert.Equal(t, "4.13", majorMinor("4.13.1-SNAPSHOT"))
	assert.Equal(t, "bogus", majorMinor("bogus"))
}
