package task

import (
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/sumo-fixed-timer/sumo"
)

// withSimulator 在模拟器句柄的作用域内执行body
// 功能：启动模拟器，执行body，无论正常结束、返回错误还是panic都关闭模拟器
// 返回：归类后的RunError，正常结束时为nil
func (ctx *Context) withSimulator(body func() error) (err error) {
	sim, err := ctx.start(ctx.runtimeConfig.Sim)
	if err != nil {
		return &RunError{Kind: KindStartupFailure, Err: err}
	}
	log.Info("simulator started successfully")
	ctx.sim = sim
	defer ctx.release()
	defer func() {
		if r := recover(); r != nil {
			err = &RunError{Kind: KindUnexpected, Category: fmt.Sprintf("%T", r), Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return classify(body())
}

// release 关闭模拟器，关闭失败只记录日志
func (ctx *Context) release() {
	if err := ctx.sim.Close(); err != nil {
		log.Debugf("close simulator: %v", err)
	}
	ctx.sim = nil
	log.Info("simulator closed")
}

// initialize 确定受控路口并下发第0相位的初始信号
func (ctx *Context) initialize() error {
	ids, err := ctx.sim.TrafficLightIDs()
	if err != nil {
		return err
	}
	n, err := ctx.junctionManager.Init(ids)
	if err != nil {
		return err
	}
	if n == 0 {
		return &RunError{Kind: KindNoControllableEntities, Err: ErrNoControllableEntities}
	}
	phase := ctx.cycle.Phase()
	log.Infof("setting initial states for %s...", phase.Name)
	return ctx.junctionManager.ApplyPhaseEntry(phase)
}

// update 执行一步控制逻辑
// 算法说明：
// 1. 相位边界检查，相位结束则切换到下一相位并下发新相位的第一段信号
// 2. 按相位内经过的步数解析每个受控路口的信号，检查长度，与当前显示不同时才下发
// 3. 定期输出状态
func (ctx *Context) update() error {
	step := ctx.clock.InternalStep
	if ctx.cycle.Advance(step) {
		phase := ctx.cycle.Phase()
		log.Infof("[Step %d] switching to %s", step, phase.Name)
		if err := ctx.junctionManager.ApplyPhaseEntry(phase); err != nil {
			return err
		}
	}
	phase, elapsed := ctx.Phase()
	if err := ctx.junctionManager.Update(phase, elapsed); err != nil {
		return err
	}
	if step%ctx.runtimeConfig.C.StatusInterval == 0 {
		log.Infof(
			"[Step %d] %s (%d/%ds): %s",
			step, phase.Name, elapsed, phase.Duration, ctx.junctionManager.Status(),
		)
	}
	return nil
}

// loop 主循环，直到步数预算用完或模拟器中没有待处理的车辆
func (ctx *Context) loop() error {
	for !ctx.clock.Done() {
		remaining, err := ctx.sim.MinExpectedNumber()
		if err != nil {
			return err
		}
		if remaining <= 0 {
			log.Infof("[Step %d] no vehicles left in simulation", ctx.clock.InternalStep)
			break
		}
		if err := ctx.sim.Step(); err != nil {
			return err
		}
		if err := ctx.update(); err != nil {
			return err
		}
		ctx.clock.Tick()
	}
	log.Infof("simulation completed after %d steps (%s)", ctx.clock.InternalStep, ctx.clock)
	return nil
}

// Run 运行
// 功能：启动模拟器，接管信号灯，按方案逐步控制，结束时关闭模拟器
// 返回：*RunError，正常结束时为nil
// 说明：每次调用都从第0相位、第0步开始
func (ctx *Context) Run() error {
	ctx.clock.Init()
	ctx.cycle.Reset()
	err := ctx.withSimulator(func() error {
		if err := ctx.initialize(); err != nil {
			return err
		}
		return ctx.loop()
	})
	report(err)
	return err
}

// report 向操作者输出结束原因
func report(err error) {
	var runErr *RunError
	if !errors.As(err, &runErr) {
		return
	}
	switch runErr.Kind {
	case KindFatalSimulation:
		log.Errorf("SUMO error: %v", runErr.Err)
		if errors.Is(runErr, sumo.ErrRejectedState) {
			log.Error("check that your traffic light states match the number of signals (controlled movements)")
		} else {
			log.Error("SUMO crashed or closed the connection, check the network and the bridge log")
		}
	case KindNoControllableEntities:
		log.Errorf("no traffic lights found: %v", runErr.Err)
	default:
		log.Errorf("%v", runErr)
	}
}
