package clock

import (
	"fmt"

	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

// Clock 控制循环时钟
// 功能：记录当前绝对步数与步数预算，提供时间格式化
// 说明：每步对应模拟器的一次simulationStep，步长DT固定为1秒
type Clock struct {
	DT         float64 // 每步时间间隔（秒）
	START_STEP int32   // 模拟器起始时间对应的步数，只影响时间显示
	END_STEP   int32   // 步数预算，控制区间[0, END)

	T            float64 // 当前模拟器时间（秒）
	InternalStep int32   // 当前步数，从0开始
}

// New 根据配置创建新的时钟实例
// 功能：根据步数配置初始化时钟
// 参数：stepConfig-控制步配置
// 返回：初始化完成的时钟实例
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:         1,
		START_STEP: stepConfig.Start,
		END_STEP:   stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 重置时钟状态
// 说明：步数归零，重新计算当前时间
func (c *Clock) Init() {
	c.InternalStep = 0
	c.T = float64(c.START_STEP) * c.DT
}

// Done 步数预算是否已用完
func (c *Clock) Done() bool {
	return c.InternalStep >= c.END_STEP
}

// Tick 步数+1
func (c *Clock) Tick() {
	c.InternalStep++
	c.T = float64(c.START_STEP+c.InternalStep) * c.DT
}

// String 获取时钟的字符串表示
// 功能：将当前时间格式化为可读的字符串（HH:MM:SS）
func (c *Clock) String() string {
	hour, minute, second := c.GetHourMinuteSecond()
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, int(second))
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 算法说明：
// 1. 计算小时数：总秒数除以3600
// 2. 计算分钟数：剩余秒数除以60
// 3. 计算秒数：最终剩余秒数（浮点数）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}
