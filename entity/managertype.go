package entity

import "github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"

// Manager依赖倒置

// entity/junction/manager.go的依赖倒置
type IJunctionManager interface {
	// 根据路网中的信号灯ID确定受控路口并接管控制，返回受控路口数
	Init(liveIDs []string) (int, error)
	IDs() []string // 受控路口ID（有序）

	ApplyPhaseEntry(phase *trafficlight.Phase) error       // 进入相位：下发第一段信号
	Update(phase *trafficlight.Phase, elapsed int32) error // 更新阶段：解析、检查并按需下发
	Status() string                                        // 所有受控路口的当前信号
}
