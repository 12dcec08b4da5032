package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion_Default(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	_, ok := Semver()
	assert.False(t, ok)
}

func TestSemver(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.2.3"
	v, ok := Semver()
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", v.String())

	version = ""
	assert.Equal(t, "dev", GetVersion())
}

func TestString(t *testing.T) {
	origV, origC := version, gitCommit
	t.Cleanup(func() { version, gitCommit = origV, origC })

	version, gitCommit = "0.1.0", ""
	assert.Equal(t, "0.1.0", String())

	gitCommit = "abc1234"
	assert.Equal(t, "0.1.0 (abc1234)", String())
}
