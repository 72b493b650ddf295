package validator

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Expr compiles a CEL expression into a Validator. The expression sees the
// cell under the variable "value" and must evaluate to a boolean:
//
//	v, err := validator.Expr("value >= 0 && value < 100")
//
// Expr exists for requirements supplied as configuration rather than code;
// predicates written in Go should use Func instead.
func Expr(expression string) (Validator, error) {
	env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("cel environment: %w", err)
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, issues.Err())
	}
	prog, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program expression %q: %w", expression, err)
	}
	return &exprValidator{expression: expression, prog: prog}, nil
}

type exprValidator struct {
	expression string
	prog       cel.Program
}

func (v *exprValidator) Check(value any) (bool, error) {
	out, _, err := v.prog.Eval(map[string]any{"value": value})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression %q evaluated to %T, want bool", v.expression, out.Value())
	}
	return b, nil
}

func (v *exprValidator) Describe() string {
	return fmt.Sprintf("value must satisfy expression %q", v.expression)
}
