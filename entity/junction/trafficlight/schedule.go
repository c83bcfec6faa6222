// 定时信控方案：相位循环 + 每个路口的信号段序列
// 方案在启动时构建一次，运行期间只读
package trafficlight

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

const (
	Red         = 'r'
	Green       = 'g'
	GreenMajor  = 'G'
	Yellow      = 'y'
	signalChars = "rgGy"
)

var (
	ErrEmptySchedule = errors.New("schedule has no phases")
)

// Segment 一段恒定的信号灯输出
type Segment struct {
	State    string // 每个字符对应一个受控movement
	Duration int32  // 持续步数
}

// Program 某路口在某相位内的信号段序列
type Program []Segment

// Phase 相位
type Phase struct {
	Name     string
	Duration int32
	Programs map[string]Program // 路口ID -> 信号段序列，缺失则该相位不控制此路口
}

// Schedule 循环相位方案
type Schedule struct {
	phases        []*Phase
	intersections map[string]int
}

// NewSchedule 根据配置构建信控方案
// 功能：转换配置并检查方案的一致性
// 参数：c-方案配置
// 返回：只读的方案实例，配置不合法时返回错误
// 算法说明：
// 1. 至少一个相位，相位时长为正，路口期望信号长度为正
// 2. 每个信号段序列非空，信号段时长为正，字符在{r,g,G,y}内
// 3. 每个信号段序列的时长之和等于相位时长
// 说明：信号长度与路口期望长度不一致不在此处拒绝，由Validator在运行时回退为全红
func NewSchedule(c config.ScheduleConfig) (*Schedule, error) {
	if len(c.Phases) == 0 {
		return nil, ErrEmptySchedule
	}
	ids := lo.Keys(c.Intersections)
	slices.Sort(ids)
	for _, id := range ids {
		if n := c.Intersections[id]; n <= 0 {
			return nil, fmt.Errorf("intersection %s: non-positive signal length %d", id, n)
		}
	}
	s := &Schedule{
		phases:        make([]*Phase, 0, len(c.Phases)),
		intersections: lo.Assign(c.Intersections),
	}
	for i, pc := range c.Phases {
		if pc.Duration <= 0 {
			return nil, fmt.Errorf("phase %d (%s): non-positive duration %d", i, pc.Name, pc.Duration)
		}
		p := &Phase{
			Name:     pc.Name,
			Duration: pc.Duration,
			Programs: make(map[string]Program, len(pc.Programs)),
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Phase %d", i+1)
		}
		for id, segments := range pc.Programs {
			program, err := newProgram(segments)
			if err != nil {
				return nil, fmt.Errorf("phase %d (%s), intersection %s: %w", i, p.Name, id, err)
			}
			if total := program.Duration(); total != p.Duration {
				return nil, fmt.Errorf(
					"phase %d (%s), intersection %s: segments sum to %d, phase duration is %d",
					i, p.Name, id, total, p.Duration,
				)
			}
			expected, ok := s.intersections[id]
			if !ok {
				log.Warnf("%s: program for %s which has no configured signal length, it will never be controlled", p.Name, id)
			}
			for _, seg := range program {
				if ok && len(seg.State) != expected {
					log.Warnf("%s: %s expects %d signals, segment '%s' has %d", p.Name, id, expected, seg.State, len(seg.State))
				}
			}
			p.Programs[id] = program
		}
		s.phases = append(s.phases, p)
	}
	return s, nil
}

func newProgram(segments []config.SegmentConfig) (Program, error) {
	if len(segments) == 0 {
		return nil, errors.New("empty program")
	}
	program := make(Program, len(segments))
	for i, seg := range segments {
		if seg.Duration <= 0 {
			return nil, fmt.Errorf("segment %d: non-positive duration %d", i, seg.Duration)
		}
		if idx := strings.IndexFunc(seg.State, func(r rune) bool {
			return !strings.ContainsRune(signalChars, r)
		}); idx >= 0 {
			return nil, fmt.Errorf("segment %d: invalid signal %q in '%s'", i, seg.State[idx], seg.State)
		}
		program[i] = Segment{State: seg.State, Duration: seg.Duration}
	}
	return program, nil
}

// Duration 信号段时长之和
func (p Program) Duration() int32 {
	return lo.SumBy(p, func(s Segment) int32 { return s.Duration })
}

// Len 相位数
func (s *Schedule) Len() int {
	return len(s.phases)
}

// Phase 获取第i个相位（按循环取模）
func (s *Schedule) Phase(i int) *Phase {
	return s.phases[i%len(s.phases)]
}

// Intersections 路口ID -> 期望信号长度
// 返回副本，修改不影响方案
func (s *Schedule) Intersections() map[string]int {
	return lo.Assign(s.intersections)
}

// ResolveState 计算路口在相位内经过elapsed步时应显示的信号
// 功能：顺序遍历信号段，第一个满足 剩余时间 < 段时长 的信号段即为当前段
// 参数：phase-相位，id-路口ID，elapsed-相位内已经过的步数
// 返回：信号字符串；相位未定义该路口或elapsed超出相位时长时ok为false
func ResolveState(phase *Phase, id string, elapsed int32) (state string, ok bool) {
	program, ok := phase.Programs[id]
	if !ok {
		return "", false
	}
	remainder := elapsed
	for _, seg := range program {
		if remainder < seg.Duration {
			return seg.State, true
		}
		remainder -= seg.Duration
	}
	return "", false
}

// HasPhaseElapsed 相位是否已经结束
func HasPhaseElapsed(phase *Phase, elapsed int32) bool {
	return elapsed >= phase.Duration
}
