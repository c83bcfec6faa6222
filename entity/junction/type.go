package junction

// 依赖倒置，表达junction对模拟器信号灯读写的接口需求
type ISignalAccessor interface {
	SetSignalState(id string, state string) error
	GetSignalState(id string) (string, error)
}
