package task

import (
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/sumo-fixed-timer/sumo"
)

// ErrorKind 控制循环结束原因的类别
type ErrorKind int

const (
	KindStartupFailure         ErrorKind = iota + 1 // 模拟器启动或连接失败
	KindNoControllableEntities                      // 配置中的路口都不在路网中
	KindFatalSimulation                             // 模拟器故障或拒绝信号
	KindUnexpected                                  // 其他错误
)

var ErrNoControllableEntities = errors.New("no configured traffic light found in network")

func (k ErrorKind) String() string {
	switch k {
	case KindStartupFailure:
		return "StartupFailure"
	case KindNoControllableEntities:
		return "NoControllableEntities"
	case KindFatalSimulation:
		return "FatalSimulationError"
	case KindUnexpected:
		return "UnexpectedError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// RunError 控制循环返回的错误
type RunError struct {
	Kind     ErrorKind
	Category string // 原始错误的类型名
	Err      error
}

func (e *RunError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Category, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// classify 将控制循环内部错误归类
func classify(err error) error {
	if err == nil {
		return nil
	}
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr
	}
	switch {
	case errors.Is(err, sumo.ErrStartup):
		return &RunError{Kind: KindStartupFailure, Err: err}
	case errors.Is(err, sumo.ErrRejectedState), errors.Is(err, sumo.ErrFatalSimulation):
		return &RunError{Kind: KindFatalSimulation, Err: err}
	default:
		return &RunError{Kind: KindUnexpected, Category: fmt.Sprintf("%T", err), Err: err}
	}
}
