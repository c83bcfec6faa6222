package trafficlight

// Runtime 定时信控的运行时数据
// 功能：记录当前相位索引与当前相位开始的步数，控制循环中唯一的可变状态
type Runtime struct {
	schedule   *Schedule
	PhaseIndex int   // 当前相位
	PhaseStart int32 // 当前相位开始的步数
}

// NewRuntime 创建运行时，从第0相位、第0步开始
func NewRuntime(schedule *Schedule) *Runtime {
	return &Runtime{schedule: schedule}
}

// Reset 回到第0相位、第0步
func (r *Runtime) Reset() {
	r.PhaseIndex = 0
	r.PhaseStart = 0
}

// Phase 当前相位
func (r *Runtime) Phase() *Phase {
	return r.schedule.Phase(r.PhaseIndex)
}

// Elapsed 当前相位已经过的步数
func (r *Runtime) Elapsed(step int32) int32 {
	return step - r.PhaseStart
}

// Advance 相位边界检查
// 功能：如果当前相位在step时已经结束，切换到下一相位（循环取模）并以step作为新相位的开始
// 参数：step-当前绝对步数
// 返回：是否发生了相位切换
// 说明：必须在ResolveState之前调用，保证解析时 elapsed < 相位时长
func (r *Runtime) Advance(step int32) bool {
	if !HasPhaseElapsed(r.Phase(), r.Elapsed(step)) {
		return false
	}
	r.PhaseIndex = (r.PhaseIndex + 1) % r.schedule.Len()
	r.PhaseStart = step
	return true
}
