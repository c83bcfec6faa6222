package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
	"go.mongodb.org/mongo-driver/bson"
)

const scheduleYAML = `
name: corridor
intersections: {T4: 2}
phases:
  - name: Phase 1
    duration: 60
    programs:
      T4: [{state: gg, duration: 55}, {state: yy, duration: 5}]
`

func TestInitInline(t *testing.T) {
	inline := &config.ScheduleConfig{Intersections: map[string]int{"X": 1}}
	s, err := Init(config.Config{Schedule: inline, Input: config.Input{Schedule: &config.InputPath{File: "ignored.yaml"}}})
	require.NoError(t, err)
	assert.Same(t, inline, s)
}

func TestInitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(file, []byte(scheduleYAML), 0o644))

	s, err := Init(config.Config{Input: config.Input{Schedule: &config.InputPath{File: file}}})
	require.NoError(t, err)
	assert.Equal(t, "corridor", s.Name)
	assert.Equal(t, 2, s.Intersections["T4"])
	require.Len(t, s.Phases, 1)
	assert.Equal(t, int32(60), s.Phases[0].Duration)
	assert.Equal(t, "yy", s.Phases[0].Programs["T4"][1].State)
}

func TestInitErrors(t *testing.T) {
	_, err := Init(config.Config{})
	assert.ErrorIs(t, err, ErrNoSchedule)

	_, err = Init(config.Config{Input: config.Input{Schedule: &config.InputPath{File: filepath.Join(t.TempDir(), "none.yaml")}}})
	assert.ErrorContains(t, err, "read schedule file")

	_, err = Init(config.Config{Input: config.Input{Schedule: &config.InputPath{DB: "sim", Col: "signal"}}})
	assert.ErrorContains(t, err, "needs input.uri")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("phasez: []\n"), 0o644))
	_, err = Init(config.Config{Input: config.Input{Schedule: &config.InputPath{File: bad}}})
	assert.ErrorContains(t, err, "parse schedule file")
}

func TestScheduleFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, scheduleFilter(config.InputPath{}))
	assert.Equal(t, bson.M{"name": "corridor"}, scheduleFilter(config.InputPath{Name: "corridor"}))
}

func TestExampleSchedule(t *testing.T) {
	s, err := Init(config.Config{Input: config.Input{Schedule: &config.InputPath{File: "../../example/schedule.yaml"}}})
	require.NoError(t, err)
	schedule, err := trafficlight.NewSchedule(*s)
	require.NoError(t, err)
	assert.Equal(t, 3, schedule.Len())
	assert.Len(t, schedule.Intersections(), 5)
}
