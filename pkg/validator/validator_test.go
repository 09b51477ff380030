package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayPattern(t *testing.T) {
	valid := []string{"00:00", "08:05", "12:30", "20:30", "23:59"}
	for _, v := range valid {
		assert.True(t, timeOfDayPattern.MatchString(v), v)
	}

	invalid := []string{"", "24:00", "8:00", "12:60", "12:5", "12-30", "noonish", "12:30:00"}
	for _, v := range invalid {
		assert.False(t, timeOfDayPattern.MatchString(v), v)
	}
}
