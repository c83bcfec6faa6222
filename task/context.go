package task

import (
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/clock"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/sumo"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

// Starter 启动外部模拟器并返回句柄
type Starter func(c config.Simulator) (entity.ISimulator, error)

// StartSumo 通过SUMO bridge启动模拟器
func StartSumo(c config.Simulator) (entity.ISimulator, error) {
	client, err := sumo.Start(c)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Context 控制任务上下文
// 功能：包含一次控制任务的全部状态，替代全局变量
// 说明：方案只读；可变状态只有时钟与相位运行时
type Context struct {
	// 时钟
	clock *clock.Clock
	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 信控方案与相位运行时
	schedule *trafficlight.Schedule
	cycle    *trafficlight.Runtime

	// 模拟器，只在Run期间有效
	start Starter
	sim   entity.ISimulator

	// Junction管理器
	junctionManager entity.IJunctionManager
}

// NewContext 创建控制任务上下文
// 参数：
//   - c: 配置对象
//   - schedule: 已检查的信控方案
//   - start: 模拟器启动函数
//
// 返回：初始化完成的Context实例
func NewContext(c config.Config, schedule *trafficlight.Schedule, start Starter) *Context {
	ctx := &Context{
		runtimeConfig: config.NewRuntimeConfig(c),
		schedule:      schedule,
		cycle:         trafficlight.NewRuntime(schedule),
		start:         start,
	}
	ctx.clock = clock.New(ctx.runtimeConfig.C.Step)
	ctx.junctionManager = junction.NewManager(ctx, schedule.Intersections())
	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Simulator() entity.ISimulator {
	return ctx.sim
}

func (ctx *Context) JunctionManager() entity.IJunctionManager {
	return ctx.junctionManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Phase 当前相位与相位内已经过的步数
func (ctx *Context) Phase() (*trafficlight.Phase, int32) {
	return ctx.cycle.Phase(), ctx.cycle.Elapsed(ctx.clock.InternalStep)
}
