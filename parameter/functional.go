// SPDX-License-Identifier: MIT
// Package: paramop/parameter
//
// functional.go — parameter functionals θ(μ): a parameter type plus an
// arithmetic expression over its names, compiled once with expr-lang/expr.
//
// Expression surface:
//   • every declared name is bound to its value slice, indexed 0-based
//     (e.g. "force[0] + sin(force[1])");
//   • the math functions below are callable; everything expr-lang ships as a
//     builtin (abs, min, max, ceil, floor, round, ...) is available too.

package parameter

import (
	"fmt"
	"math"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/paramop/errs"
)

// unary math functions callable from coefficient expressions.
var unaryMath = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
}

// binary math functions callable from coefficient expressions.
var binaryMath = map[string]func(float64, float64) float64{
	"pow":   math.Pow,
	"atan2": math.Atan2,
}

// mathOptions is the expr option set exposing unaryMath/binaryMath.
var mathOptions = buildMathOptions()

func buildMathOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(unaryMath)+len(binaryMath))
	for name, fn := range unaryMath {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(params))
			}
			x, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(x), nil
		}))
	}
	for name, fn := range binaryMath {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(params))
			}
			x, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			y, err := toFloat(params[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(x, y), nil
		}))
	}

	return opts
}

// toFloat converts the numeric kinds expr-lang produces into float64.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("non-numeric value %v (%T)", v, v)
	}
}

// Functional is a scalar function of a parameter, θ: μ ↦ expression(μ).
// It is immutable and safe for concurrent Evaluate calls.
type Functional struct {
	ptype      Type
	expression string
	program    *vm.Program
}

// NewFunctional compiles expression against t.
//
// The free variables of expression must be exactly the names of t: an
// unknown identifier or an unused declared name is rejected.
//
// Errors:
//   - errs.ErrConfiguration (empty, unparsable or ill-typed expression,
//     free-variable mismatch).
func NewFunctional(t Type, expression string) (*Functional, error) {
	if expression == "" {
		return nil, fmt.Errorf("NewFunctional: empty expression: %w", errs.ErrConfiguration)
	}
	tree, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("NewFunctional(%q): %w: %w", expression, errs.ErrConfiguration, err)
	}
	free := freeVariables(tree)
	for _, name := range free {
		if !t.Has(name) {
			return nil, fmt.Errorf("NewFunctional(%q): unknown variable %q, type is %s: %w",
				expression, name, t, errs.ErrConfiguration)
		}
	}
	if len(free) != t.Len() {
		return nil, fmt.Errorf("NewFunctional(%q): uses %v, type declares %s: %w",
			expression, free, t, errs.ErrConfiguration)
	}

	opts := append([]expr.Option{expr.Env(zeroEnv(t)), expr.AsFloat64()}, mathOptions...)
	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFunctional(%q): %w: %w", expression, errs.ErrConfiguration, err)
	}

	return &Functional{ptype: t.Clone(), expression: expression, program: program}, nil
}

// MustFunctional is NewFunctional for static declarations; it panics on error.
func MustFunctional(t Type, expression string) *Functional {
	f, err := NewFunctional(t, expression)
	if err != nil {
		panic(err)
	}

	return f
}

// ParameterType returns the declared type.
func (f *Functional) ParameterType() Type { return f.ptype }

// Expression returns the source expression.
func (f *Functional) Expression() string { return f.expression }

// Evaluate returns θ(mu).
//
// Errors:
//   - errs.ErrWrongParameterType if mu is not of the declared type.
//   - errs.ErrConfiguration if the expression fails at runtime (e.g. an
//     index beyond the declared size).
func (f *Functional) Evaluate(mu Parameter) (float64, error) {
	if err := mu.Check(f.ptype); err != nil {
		return 0, fmt.Errorf("Functional.Evaluate(%q): %w (%w)", f.expression, errs.ErrWrongParameterType, err)
	}
	env := make(map[string]any, len(mu.names))
	for _, name := range mu.names {
		env[name] = mu.values[name]
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return 0, fmt.Errorf("Functional.Evaluate(%q): %w: %w", f.expression, errs.ErrConfiguration, err)
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, fmt.Errorf("Functional.Evaluate(%q): %w: %w", f.expression, errs.ErrConfiguration, err)
	}

	return v, nil
}

// String renders the functional as "expression over {type}".
func (f *Functional) String() string {
	return fmt.Sprintf("%s over %s", f.expression, f.ptype)
}

// zeroEnv binds every name of t to a zero slice of its declared size;
// the compiler uses it to type-check the expression.
func zeroEnv(t Type) map[string]any {
	env := make(map[string]any, t.Len())
	for _, name := range t.names {
		env[name] = make([]float64, t.sizes[name])
	}

	return env
}

// identifierCollector gathers identifier names from an expression tree,
// keeping function names (callees) apart from variables.
type identifierCollector struct {
	seen    map[string]struct{}
	callees map[string]struct{}
}

// Visit implements ast.Visitor.
func (c *identifierCollector) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		c.seen[n.Value] = struct{}{}
	case *ast.CallNode:
		if id, ok := n.Callee.(*ast.IdentifierNode); ok {
			c.callees[id.Value] = struct{}{}
		}
	}
}

// freeVariables returns the sorted, de-duplicated variable names of tree.
// Identifiers only ever used as callees are functions, not variables.
func freeVariables(tree *parser.Tree) []string {
	c := &identifierCollector{
		seen:    make(map[string]struct{}),
		callees: make(map[string]struct{}),
	}
	ast.Walk(&tree.Node, c)
	out := make([]string, 0, len(c.seen))
	for name := range c.seen {
		if _, called := c.callees[name]; called {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
