// Package criteria evaluates dao.Parameter filters against string fields.
package criteria

import (
	"github.com/viant/cmdchain/service/dao"
)

// In reports whether value equals the parameter value or one of its values.
// A nil parameter or one with an unsupported value type matches anything.
func In(value string, parameter *dao.Parameter) bool {
	if parameter == nil {
		return true
	}
	candidates := parameter.Values()
	if candidates == nil {
		return true
	}
	for _, candidate := range candidates {
		if candidate == value {
			return true
		}
	}
	return false
}

// Fields builds a matcher from named string accessors; parameters naming an
// unknown field match anything.
func Fields[T any](fields map[string]func(*T) string) func(*T, *dao.Parameter) bool {
	return func(v *T, parameter *dao.Parameter) bool {
		field, ok := fields[parameter.Name]
		if !ok {
			return true
		}
		return In(field(v), parameter)
	}
}
