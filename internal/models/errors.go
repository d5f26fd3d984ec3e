package models

import "fmt"

// RuleError — значение прошло разбор по форме, но нарушает бизнес-правило
// (месячный интервал свечи, кривой день недели, сессия длиннее суток).
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func ruleErrorf(format string, args ...interface{}) *RuleError {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}
