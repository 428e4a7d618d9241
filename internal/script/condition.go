package script

import (
	"strconv"
	"strings"
)

// Condition is a parsed lock-condition expression: a relational operator
// applied to the relationship score and an integer literal. The free-form
// expression strings of the script format are reduced to this closed form
// at load time; nothing is ever evaluated as code.
type Condition struct {
	Op    string
	Value int
}

var conditionOps = []string{"<=", ">=", "==", "!=", "<", ">"}

// ParseCondition parses expressions like "< 0", "score >= 3" or "!= -1".
// An optional leading identifier names the score and is ignored. Malformed
// expressions yield nil: lock conditions fail open so that a bad script
// line cannot make an option permanently unselectable.
func ParseCondition(expr string) *Condition {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil
	}

	// Strip an optional identifier token before the operator.
	if i := strings.IndexAny(s, "<>=!"); i > 0 {
		head := strings.TrimSpace(s[:i])
		for _, r := range head {
			if !isIdentRune(r) {
				return nil
			}
		}
		s = s[i:]
	}

	for _, op := range conditionOps {
		if !strings.HasPrefix(s, op) {
			continue
		}
		lit := strings.TrimSpace(s[len(op):])
		v, err := strconv.Atoi(lit)
		if err != nil {
			return nil
		}
		return &Condition{Op: op, Value: v}
	}
	return nil
}

// Eval applies the condition to the given score.
func (c *Condition) Eval(score int) bool {
	switch c.Op {
	case "<":
		return score < c.Value
	case "<=":
		return score <= c.Value
	case ">":
		return score > c.Value
	case ">=":
		return score >= c.Value
	case "==":
		return score == c.Value
	case "!=":
		return score != c.Value
	default:
		return false
	}
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
