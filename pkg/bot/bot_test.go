package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeInfo(t *testing.T) {
	assert.Contains(t, SizeInfo(0, 0), "0x0: 18 bytes")
	assert.Contains(t, SizeInfo(320, 480), "614418 bytes")
	assert.Contains(t, SizeInfo(70000, 1), "dimension too large")
}
