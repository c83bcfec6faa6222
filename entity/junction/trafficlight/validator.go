package trafficlight

import "strings"

// Validation 信号长度检查结果
type Validation struct {
	State    string // 实际应下发的信号
	Fallback bool   // true表示长度不符，已回退为全红
	Expected int
	Actual   int
}

// Validator 按路口期望长度检查信号字符串
type Validator struct {
	expected map[string]int
}

func NewValidator(expected map[string]int) *Validator {
	return &Validator{expected: expected}
}

// Validate 检查信号长度
// 功能：长度一致时原样返回；不一致时输出诊断并返回同长度的全红信号
// 参数：id-路口ID，candidate-待下发的信号
// 返回：检查结果，不会返回错误，下一步会重新检查
func (v *Validator) Validate(id, candidate string) Validation {
	expected := v.expected[id]
	if len(candidate) == expected {
		return Validation{State: candidate, Expected: expected, Actual: expected}
	}
	log.Errorf("%s expects %d signals, got '%s' (len=%d), fallback to all red", id, expected, candidate, len(candidate))
	return Validation{
		State:    AllRed(expected),
		Fallback: true,
		Expected: expected,
		Actual:   len(candidate),
	}
}

// AllRed 长度为n的全红信号
func AllRed(n int) string {
	return strings.Repeat(string(Red), n)
}
