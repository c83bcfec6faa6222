package task_test

import (
	"fmt"

	"github.com/tsinghua-fib-lab/sumo-fixed-timer/entity"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/sumo"
	"github.com/tsinghua-fib-lab/sumo-fixed-timer/utils/config"
)

type push struct {
	Step  int // 已执行的Step次数
	ID    string
	State string
}

// fakeSimulator 记录读写的内存模拟器
type fakeSimulator struct {
	ids        []string
	states     map[string]string
	reject     map[string]bool // 对这些信号返回ErrRejectedState
	vehicles   int             // <0 表示无限
	panicAt    int             // 第n次Step时panic，0表示不panic
	controlled []string
	pushes     []push
	steps      int
	closed     int
}

func newFakeSimulator(ids ...string) *fakeSimulator {
	states := make(map[string]string)
	for _, id := range ids {
		states[id] = "GG"
	}
	return &fakeSimulator{ids: ids, states: states, reject: map[string]bool{}, vehicles: -1}
}

func (f *fakeSimulator) starter() func(config.Simulator) (entity.ISimulator, error) {
	return func(config.Simulator) (entity.ISimulator, error) { return f, nil }
}

func (f *fakeSimulator) TrafficLightIDs() ([]string, error) { return f.ids, nil }

func (f *fakeSimulator) TakeControl(id string) error {
	f.controlled = append(f.controlled, id)
	return nil
}

func (f *fakeSimulator) SetSignalState(id, state string) error {
	if f.reject[state] {
		return fmt.Errorf("%w: bad state %s", sumo.ErrRejectedState, state)
	}
	f.states[id] = state
	f.pushes = append(f.pushes, push{Step: f.steps, ID: id, State: state})
	return nil
}

func (f *fakeSimulator) GetSignalState(id string) (string, error) { return f.states[id], nil }

func (f *fakeSimulator) Step() error {
	f.steps++
	if f.panicAt > 0 && f.steps == f.panicAt {
		panic("engine exploded")
	}
	if f.vehicles > 0 {
		f.vehicles--
	}
	return nil
}

func (f *fakeSimulator) MinExpectedNumber() (int, error) {
	if f.vehicles < 0 {
		return 1, nil
	}
	return f.vehicles, nil
}

func (f *fakeSimulator) Close() error {
	f.closed++
	return nil
}

func (f *fakeSimulator) pushesFor(id string) []push {
	out := make([]push, 0)
	for _, p := range f.pushes {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}
