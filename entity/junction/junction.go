package junction

import (
	"fmt"

	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
)

// Junction 受控路口
// 功能：同时存在于配置与路网中的路口，记录上一次下发的信号
type Junction struct {
	id        string
	lastState string // 上一次下发（或已确认显示）的信号

	sim       ISignalAccessor
	validator *trafficlight.Validator
}

func newJunction(id string, sim ISignalAccessor, validator *trafficlight.Validator) *Junction {
	return &Junction{
		id:        id,
		sim:       sim,
		validator: validator,
	}
}

// apply 检查并下发信号
// 功能：长度检查后先读取模拟器当前信号，只有不同时才写入
// 参数：state-方案解析出的信号
// 返回：是否实际写入，以及模拟器读写错误
// 说明：长度不符回退为全红只影响本步，下一步重新检查
func (j *Junction) apply(state string) (bool, error) {
	v := j.validator.Validate(j.id, state)
	current, err := j.sim.GetSignalState(j.id)
	if err != nil {
		return false, fmt.Errorf("get state of %s: %w", j.id, err)
	}
	if current == v.State {
		j.lastState = current
		return false, nil
	}
	if err := j.sim.SetSignalState(j.id, v.State); err != nil {
		return false, fmt.Errorf("set %s to '%s': %w", j.id, v.State, err)
	}
	j.lastState = v.State
	return true, nil
}
