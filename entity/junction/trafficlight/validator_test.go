package trafficlight_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
)

func TestValidate(t *testing.T) {
	v := trafficlight.NewValidator(map[string]int{"T1": 3, "T5": 1})

	res := v.Validate("T1", "gGy")
	assert.False(t, res.Fallback)
	assert.Equal(t, "gGy", res.State)

	for _, bad := range []string{"", "gg", "gggg"} {
		res = v.Validate("T1", bad)
		assert.True(t, res.Fallback)
		assert.Equal(t, "rrr", res.State)
		assert.Equal(t, 3, res.Expected)
		assert.Equal(t, len(bad), res.Actual)
	}

	res = v.Validate("T5", "gg")
	assert.True(t, res.Fallback)
	assert.Equal(t, "r", res.State)
}

func TestAllRed(t *testing.T) {
	s := trafficlight.AllRed(7)
	assert.Len(t, s, 7)
	assert.Empty(t, strings.Trim(s, "r"))
	assert.Equal(t, "", trafficlight.AllRed(0))
}
