package config

import "time"

// InputPath 指定信控方案数据来源的配置（文件、MongoDB）
// 功能：定义方案输入路径的配置结构
// 说明：File优先级高于MongoDB
type InputPath struct {
	DB   string `yaml:"db,omitempty"`   // 数据库名
	Col  string `yaml:"col,omitempty"`  // 集合名
	Name string `yaml:"name,omitempty"` // 方案名，为空则取集合中的第一条
	File string `yaml:"file,omitempty"` // 文件路径（优先级高于MongoDB）
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// Input 指定控制器所有输入数据的配置项
type Input struct {
	URI      string     `yaml:"uri,omitempty"`      // MongoDB连接字符串
	Schedule *InputPath `yaml:"schedule,omitempty"` // 信控方案
}

// ControlStep 指定模拟步数范围的配置项
type ControlStep struct {
	Start int32 `yaml:"start,omitempty"` // 开始步数
	Total int32 `yaml:"total"`           // 总步数
}

// Control 控制循环配置
type Control struct {
	Step           ControlStep `yaml:"step"`
	StatusInterval int32       `yaml:"status_interval,omitempty"` // 状态输出间隔步数
}

// Simulator 外部模拟器（SUMO bridge）的连接配置
type Simulator struct {
	Binary         string        `yaml:"binary,omitempty"`          // 需要启动的bridge进程，为空则只连接
	Args           []string      `yaml:"args,omitempty"`            // 进程参数
	Network        string        `yaml:"network,omitempty"`         // unix | tcp
	Address        string        `yaml:"address"`                   // socket路径或host:port
	ConnectRetries int           `yaml:"connect_retries,omitempty"` // 连接重试次数
	RetryInterval  time.Duration `yaml:"retry_interval,omitempty"`  // 连接重试间隔
}

// SegmentConfig 一段信号灯状态及其持续步数
type SegmentConfig struct {
	State    string `yaml:"state" bson:"state"`
	Duration int32  `yaml:"duration" bson:"duration"`
}

// PhaseConfig 一个相位：名称、总时长、各路口的信号段序列
type PhaseConfig struct {
	Name     string                     `yaml:"name" bson:"name"`
	Duration int32                      `yaml:"duration" bson:"duration"`
	Programs map[string][]SegmentConfig `yaml:"programs" bson:"programs"`
}

// ScheduleConfig 完整的定时信控方案
// 功能：路口期望信号长度 + 循环相位列表
type ScheduleConfig struct {
	Name          string         `yaml:"name,omitempty" bson:"name"`
	Intersections map[string]int `yaml:"intersections" bson:"intersections"` // 路口ID -> 受控movement数
	Phases        []PhaseConfig  `yaml:"phases" bson:"phases"`
}

// Config YAML配置文件的根结构
type Config struct {
	Input     Input           `yaml:"input,omitempty"`    // 输入
	Control   Control         `yaml:"control"`            // 控制循环
	Simulator Simulator       `yaml:"simulator"`          // 外部模拟器
	Schedule  *ScheduleConfig `yaml:"schedule,omitempty"` // 内联信控方案（优先级最高）
}
