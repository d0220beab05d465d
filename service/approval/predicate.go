package approval

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// Predicate decides whether a handler accepts a request. An error means the
// predicate could not be evaluated; the chain treats it as not accepted.
type Predicate func(r *Request) (bool, error)

// Below accepts magnitudes strictly lower than threshold.
func Below(threshold int) Predicate {
	return func(r *Request) (bool, error) { return r.Magnitude < threshold, nil }
}

// AtMost accepts magnitudes lower than or equal to limit.
func AtMost(limit int) Predicate {
	return func(r *Request) (bool, error) { return r.Magnitude <= limit, nil }
}

var celEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("magnitude", cel.IntType),
		cel.Variable("code", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("description", cel.StringType),
	)
})

// Expression compiles a CEL boolean expression over the request fields
// magnitude, code, kind (Request.Type) and description, e.g.
// `magnitude < 16 && kind == "leave"`. Evaluation failures are returned.
func Expression(expr string) (Predicate, error) {
	env, err := celEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error in %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("CEL expression %q returns %v, expected bool", expr, ast.OutputType())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error in %q: %w", expr, err)
	}
	return func(r *Request) (bool, error) {
		out, _, err := program.Eval(map[string]interface{}{
			"magnitude":   int64(r.Magnitude),
			"code":        r.Code,
			"kind":        r.Type,
			"description": r.Description,
		})
		if err != nil {
			return false, fmt.Errorf("failed to evaluate %q: %w", expr, err)
		}
		accepted, ok := out.Value().(bool)
		return ok && accepted, nil
	}, nil
}
