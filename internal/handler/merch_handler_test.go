package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBoolFilter(t *testing.T) {
	for _, raw := range []string{"true", "1", "yes", "YES", " True "} {
		v := parseBoolFilter(raw)
		if assert.NotNil(t, v, raw) {
			assert.True(t, *v, raw)
		}
	}

	for _, raw := range []string{"false", "0", "no", "No"} {
		v := parseBoolFilter(raw)
		if assert.NotNil(t, v, raw) {
			assert.False(t, *v, raw)
		}
	}

	// unrecognized values mean "no filter", not an error
	for _, raw := range []string{"", "maybe", "2", "truthy"} {
		assert.Nil(t, parseBoolFilter(raw), raw)
	}
}
