package junction

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils"
)

// Junction管理器
type JunctionManager struct {
	ctx entity.ITaskContext

	expected  map[string]int // 配置：路口ID -> 期望信号长度
	validator *trafficlight.Validator

	data      map[string]*Junction
	junctions []*Junction // 按ID排序
}

// NewManager 创建Junction管理器实例
// 参数：ctx-任务上下文，expected-配置中的路口ID与期望信号长度
func NewManager(ctx entity.ITaskContext, expected map[string]int) *JunctionManager {
	return &JunctionManager{
		ctx:       ctx,
		expected:  expected,
		validator: trafficlight.NewValidator(expected),
		data:      make(map[string]*Junction),
		junctions: make([]*Junction, 0),
	}
}

// Init 确定受控路口并接管控制
// 功能：将配置中的路口与路网中的信号灯取交集，对交集中的每个路口关闭模拟器的静态信控
// 参数：liveIDs-路网中所有可控信号灯ID
// 返回：受控路口数；接管控制失败时返回错误
// 说明：配置中存在而路网中不存在的路口只输出日志，不参与控制
func (m *JunctionManager) Init(liveIDs []string) (int, error) {
	log.Infof("available traffic lights in network: %v", liveIDs)
	m.data = make(map[string]*Junction)
	m.junctions = make([]*Junction, 0)
	if len(m.expected) == 0 {
		return 0, nil
	}

	configured := lo.Keys(m.expected)
	slices.Sort(configured)
	live := lo.SliceToMap(liveIDs, func(id string) (string, string) { return id, id })
	found, missing := utils.Find(live, liveIDs, configured)
	for _, id := range missing {
		log.Warnf("✗ %s: not found in network", id)
	}

	sim := m.ctx.Simulator()
	for _, id := range found {
		if err := sim.TakeControl(id); err != nil {
			return 0, fmt.Errorf("take control of %s: %w", id, err)
		}
		log.Infof("✓ %s: took control from static logic", id)
		j := newJunction(id, sim, m.validator)
		m.data[id] = j
		m.junctions = append(m.junctions, j)
	}
	if len(m.junctions) > 0 {
		log.Infof("controlling traffic lights: %v", m.IDs())
	}
	return len(m.junctions), nil
}

// IDs 受控路口ID，按字典序
func (m *JunctionManager) IDs() []string {
	return lo.Map(m.junctions, func(j *Junction, _ int) string { return j.id })
}

// ApplyPhaseEntry 进入相位
// 功能：为每个在该相位有信号段序列的受控路口下发第一段信号
// 说明：控制开始（第0相位）与每次相位切换都调用这里
func (m *JunctionManager) ApplyPhaseEntry(phase *trafficlight.Phase) error {
	for _, j := range m.junctions {
		program, ok := phase.Programs[j.id]
		if !ok || len(program) == 0 {
			continue
		}
		if _, err := j.apply(program[0].State); err != nil {
			return err
		}
		log.Infof("  %s → %s", j.id, j.lastState)
	}
	return nil
}

// Update 更新阶段
// 功能：按相位内经过的步数解析每个受控路口的信号，检查长度后按需下发
// 参数：phase-当前相位，elapsed-相位内已经过的步数
func (m *JunctionManager) Update(phase *trafficlight.Phase, elapsed int32) error {
	for _, j := range m.junctions {
		state, ok := trafficlight.ResolveState(phase, j.id, elapsed)
		if !ok {
			continue
		}
		if _, err := j.apply(state); err != nil {
			return err
		}
	}
	return nil
}

// Status 所有受控路口当前显示的信号，形如 "T1:rrr | T2:gg"
func (m *JunctionManager) Status() string {
	sim := m.ctx.Simulator()
	states := lo.Map(m.junctions, func(j *Junction, _ int) string {
		state, err := sim.GetSignalState(j.id)
		if err != nil {
			return j.id + ":ERROR"
		}
		return j.id + ":" + state
	})
	return strings.Join(states, " | ")
}
