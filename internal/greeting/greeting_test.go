package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr())
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "Running on http://localhost:8080", Banner())
	assert.Contains(t, Banner(), "8080")
}
