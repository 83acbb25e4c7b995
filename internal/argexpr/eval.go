package argexpr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/getarg/internal/argtable"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// EvalContext builds an HCL evaluation context exposing t as the "arg"
// variable along with the lookup functions.
func EvalContext(t *argtable.Table) (*hcl.EvalContext, error) {
	arg, err := Value(t)
	if err != nil {
		return nil, err
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"arg": arg,
		},
		Functions: map[string]function.Function{
			"has":      hasFunc(t),
			"str":      strFunc(t),
			"int":      intFunc(t),
			"bool":     boolFunc(t),
			"as":       asFunc(t),
			"upper":    stdlib.UpperFunc,
			"lower":    stdlib.LowerFunc,
			"coalesce": stdlib.CoalesceFunc,
			"length":   stdlib.LengthFunc,
		},
	}, nil
}

// Evaluate parses src as a single HCL expression and evaluates it against t.
func Evaluate(t *argtable.Table, src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<eval>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression %q: %w", src, diags)
	}
	evalCtx, err := EvalContext(t)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression %q: %w", src, err)
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression %q: %w", src, diags)
	}
	return val, nil
}

var nameParam = function.Parameter{Name: "name", Type: cty.String}

func hasFunc(t *argtable.Table) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{nameParam},
		Type:   function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.BoolVal(t.Has(canonical(args[0].AsString()))), nil
		},
	})
}

func strFunc(t *argtable.Table) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{nameParam, {Name: "default", Type: cty.String}},
		Type:   function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(t.GetString(canonical(args[0].AsString()), args[1].AsString())), nil
		},
	})
}

func intFunc(t *argtable.Table) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{nameParam, {Name: "default", Type: cty.Number}},
		Type:   function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			var def int64
			if err := gocty.FromCtyValue(args[1], &def); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			return cty.NumberIntVal(t.GetInt(canonical(args[0].AsString()), def)), nil
		},
	})
}

func boolFunc(t *argtable.Table) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{nameParam, {Name: "default", Type: cty.Bool}},
		Type:   function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.BoolVal(t.GetBool(canonical(args[0].AsString()), args[1].True())), nil
		},
	})
}

// asFunc converts a flag value to the type named by a type expression such
// as "number", "bool" or "list(string)". Absent flags yield null.
func asFunc(t *argtable.Table) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{nameParam, {Name: "type", Type: cty.String}},
		Type: func(args []cty.Value) (cty.Type, error) {
			if !args[1].IsKnown() {
				return cty.DynamicPseudoType, nil
			}
			ty, err := parseType(args[1].AsString())
			if err != nil {
				return cty.NilType, function.NewArgError(1, err)
			}
			return ty, nil
		},
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return Convert(t, args[0].AsString(), retType)
		},
	})
}

func parseType(src string) (cty.Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<type>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilType, diags
	}
	ty, diags := typeexpr.Type(expr)
	if diags.HasErrors() {
		return cty.NilType, diags
	}
	return ty, nil
}
