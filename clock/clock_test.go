package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/clock"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

func TestClock(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 3600, Total: 3})
	assert.Equal(t, int32(0), c.InternalStep)
	assert.Equal(t, "01:00:00", c.String())

	for i := 0; i < 3; i++ {
		assert.False(t, c.Done())
		c.Tick()
	}
	assert.True(t, c.Done())
	assert.Equal(t, "01:00:03", c.String())

	h, m, s := c.GetHourMinuteSecond()
	assert.Equal(t, 1, h)
	assert.Equal(t, 0, m)
	assert.InDelta(t, 3.0, s, 1e-9)

	c.Init()
	assert.Equal(t, int32(0), c.InternalStep)
	assert.False(t, c.Done())
}

func TestClockZeroBudget(t *testing.T) {
	assert.True(t, clock.New(config.ControlStep{}).Done())
}
