package config

import "time"

const (
	defaultTotalStep      = 58500
	defaultStatusInterval = 30
	defaultNetwork        = "unix"
	defaultRetries        = 30
	defaultRetryInterval  = time.Second
)

// RuntimeConfig 运行时配置
// 功能：存储补全默认值后的配置，运行期间只读
type RuntimeConfig struct {
	All Config    // 全部配置
	C   Control   // 控制循环配置
	Sim Simulator // 模拟器连接配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：复制原始配置并补全缺省项
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 总步数缺省为58500
// 2. 状态输出间隔缺省为30步
// 3. 连接方式缺省为unix socket，重试30次，间隔1秒
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	rc.Sim = config.Simulator

	if rc.C.Step.Total <= 0 {
		rc.C.Step.Total = defaultTotalStep
	}
	if rc.C.StatusInterval <= 0 {
		rc.C.StatusInterval = defaultStatusInterval
	}
	if rc.Sim.Network == "" {
		rc.Sim.Network = defaultNetwork
	}
	if rc.Sim.ConnectRetries <= 0 {
		rc.Sim.ConnectRetries = defaultRetries
	}
	if rc.Sim.RetryInterval <= 0 {
		rc.Sim.RetryInterval = defaultRetryInterval
	}
	return rc
}
