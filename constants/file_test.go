package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpeg", NormalizeExt("jpeg"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestIsAllowedExt(t *testing.T) {
	for _, ext := range []string{".pdf", ".PDF", "jpg", ".jpeg", ".png", ".tiff", ".txt"} {
		assert.True(t, IsAllowedExt(ext), ext)
	}
	for _, ext := range []string{".exe", ".docx", "", ".pdf.bak"} {
		assert.False(t, IsAllowedExt(ext), ext)
	}
}
