package entity

import (
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/clock"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	Simulator() ISimulator
	JunctionManager() IJunctionManager
	RuntimeConfig() *config.RuntimeConfig
}
