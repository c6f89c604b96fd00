package query

import (
	"errors"
	"fmt"

	"github.com/metarhia/jstp-go/debug"
	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/gomap"
	"github.com/metarhia/jstp-go/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// RootVar names the whole input value.
const RootVar = "_"

type Program struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string { return p.src }

// Run evaluates p with n as input and converts the result back to IR.
func (p *Program) Run(n *ir.Node) (*ir.Node, error) {
	res, err := p.run(n)
	if err != nil {
		return nil, err
	}
	out, err := gomap.FromNative(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrQuery, p.src, err)
	}
	return out, nil
}

// Test evaluates p with n as input and reports whether the result is truthy.
func (p *Program) Test(n *ir.Node) (bool, error) {
	res, err := p.Run(n)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}

func (p *Program) run(n *ir.Node) (any, error) {
	env := Env(n)
	res, err := vm.Run(p.prg, env)
	if debug.Query() {
		debug.Logf("query %q on %s -> %v (%v)\n", p.src, debug.JSTP{Node: n}, res, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Env builds the variables an expression sees for input n.
func Env(n *ir.Node) map[string]any {
	root := gomap.ToNative(n, gomap.PlainMaps(true), gomap.MixedArrays(true))
	env := map[string]any{}
	if m, ok := root.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env[RootVar] = root
	return env
}

// Eval compiles and runs src against n.
func Eval(n *ir.Node, src string) (*ir.Node, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(n)
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("isUndefined", func(params ...any) (any, error) {
			return gomap.IsUndefined(params[0]), nil
		},
			new(func(any) bool)),
		expr.Function("jstp", func(params ...any) (any, error) {
			n, err := gomap.FromNative(params[0])
			if err != nil {
				return nil, err
			}
			return encode.String(n)
		},
			new(func(any) string)),
	}
}
