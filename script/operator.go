// Package script compiles a user-supplied Lua expression into the plain
// Go function dsp.Operator expects, using gopher-lua. This lets a
// caller wire arbitrary per-sample shaping (clipping, thresholding,
// bit-crushing) into the graph at runtime without recompiling the
// program, while dsp itself stays free of any scripting dependency.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Expression is a compiled Lua expression of one variable, x, evaluated
// once per sample. It is not safe for concurrent use — the underlying
// *lua.LState is single-threaded, matching the graph's own
// single-threaded pull model (§5).
type Expression struct {
	state *lua.LState
	fn    *lua.LFunction
}

// CompileExpr compiles a Lua expression such as "x * 0.5" or
// "math.max(-1, math.min(1, x))" into an Expression. The expression is
// wrapped as the body of a function taking x and must evaluate to a
// number.
func CompileExpr(expr string) (*Expression, error) {
	state := lua.NewState()

	src := fmt.Sprintf("return function(x) return (%s) end", expr)
	if err := state.DoString(src); err != nil {
		state.Close()
		return nil, fmt.Errorf("script: compile %q: %w", expr, err)
	}

	fn, ok := state.Get(-1).(*lua.LFunction)
	state.Pop(1)
	if !ok {
		state.Close()
		return nil, fmt.Errorf("script: %q did not produce a function", expr)
	}

	return &Expression{state: state, fn: fn}, nil
}

// Eval evaluates the compiled expression at x.
func (e *Expression) Eval(x float32) float32 {
	e.state.Push(e.fn)
	e.state.Push(lua.LNumber(x))
	if err := e.state.PCall(1, 1, nil); err != nil {
		// A scripted operator must never panic the audio graph; fall
		// back to passing the input through unchanged.
		return x
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return x
	}
	return float32(n)
}

// Func adapts the compiled expression to the func(dsp.Sample) dsp.Sample
// signature dsp.Operator and dsp.NewOperator expect, without this
// package importing dsp directly.
func (e *Expression) Func() func(float32) float32 {
	return e.Eval
}

// Close releases the underlying Lua state. Call it once the Expression
// is no longer needed.
func (e *Expression) Close() {
	e.state.Close()
}
