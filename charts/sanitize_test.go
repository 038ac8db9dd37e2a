package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Popular_Items", SafeName("Popular Items"))
	assert.Equal(t, "bulk-upload_v2", SafeName("bulk-upload v2"))
	assert.Equal(t, "reads_50__writes", SafeName("reads 50% writes"))
	assert.Equal(t, "plain", SafeName("plain"))
	assert.Equal(t, "", SafeName(""))
}

func TestSafeNameDeterministic(t *testing.T) {
	assert.Equal(t, SafeName("mixed r/w"), SafeName("mixed r/w"))
}

func TestSafeNameCollision(t *testing.T) {
	// labels differing only in replaced characters collide after
	// sanitization; that ambiguity is accepted, not fixed
	assert.Equal(t, SafeName("mixed r/w"), SafeName("mixed r w"))
	assert.Equal(t, SafeName("a.b"), SafeName("a:b"))
}
