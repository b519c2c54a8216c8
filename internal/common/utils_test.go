package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("light rain showers", "snow", "rain"))
	assert.False(t, HasAny("clear", "cloud", "fog"))
	assert.False(t, HasAny("anything"))
}

func TestFirstRunes(t *testing.T) {
	assert.Equal(t, "Mon", FirstRunes("Monday", 3))
	assert.Equal(t, "Sáb", FirstRunes("Sábado", 3))
	assert.Equal(t, "Mo", FirstRunes("Mo", 3))
	assert.Equal(t, "", FirstRunes("Monday", 0))
}
