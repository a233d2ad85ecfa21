package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetGitCommit())
	assert.NotEmpty(t, GetBuildDate())
}

func TestString(t *testing.T) {
	s := String()
	assert.True(t, strings.HasPrefix(s, GetVersion()))
	assert.Contains(t, s, "commit "+GetGitCommit())
}
