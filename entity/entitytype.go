package entity

// 外部模拟器接口（SUMO bridge）
// 控制循环只通过这些调用与模拟器交互
type ISimulator interface {
	TrafficLightIDs() ([]string, error)           // 路网中所有可控信号灯
	TakeControl(id string) error                  // 关闭模拟器自带的静态信控逻辑
	SetSignalState(id string, state string) error // 下发信号，非法信号返回sumo.ErrRejectedState
	GetSignalState(id string) (string, error)     // 当前显示的信号
	Step() error                                  // 推进一步，模拟器故障返回sumo.ErrFatalSimulation
	MinExpectedNumber() (int, error)              // 尚待处理的交通参与者数量
	Close() error
}
