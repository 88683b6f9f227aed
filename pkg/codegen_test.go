package rbjs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator(t *testing.T) {
	cases := []struct {
		data   Program
		expect string
	}{
		{
			Program{
				&ExprList{Exprs: []*Expr{
					{Terms: []Term{&VarRef{"str"}, &AssignOp{}, &StringLiteral{"string"}}},
				}},
			},
			"str = 'string';\n",
		},
		{
			Program{
				&FuncDef{Name: "fun", Params: []*Expr{}, Body: &ExprList{Exprs: []*Expr{}}},
			},
			"function fun() {\n}\n",
		},
		{
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{
						{Terms: []Term{&VarRef{"arg1"}}},
						{Terms: []Term{&VarRef{"arg2"}}},
					},
					Body: &ExprList{Exprs: []*Expr{}},
				},
			},
			"function fun(arg1, arg2) {\n}\n",
		},
		{
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{
						{Terms: []Term{&VarRef{"a"}, &AssignOp{}, &IntegerLiteral{1}, &Plus{}, &IntegerLiteral{2}}},
					},
					Body: &ExprList{Exprs: []*Expr{}},
				},
			},
			"function fun(a = 1 + 2) {\n}\n",
		},
		{
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{},
					Body: &ExprList{Exprs: []*Expr{
						{Terms: []Term{&VarRef{"x"}, &AssignOp{}, &IntegerLiteral{1}}},
						{Terms: []Term{&VarRef{"x"}, &Star{}, &IntegerLiteral{2}, &Minus{}, &IntegerLiteral{3}, &Slash{}, &VarRef{"y"}}},
					}},
				},
			},
			"function fun() {\nx = 1;\nreturn x * 2 - 3 / y;\n}\n",
		},
		{
			Program{
				&ExprList{Exprs: []*Expr{
					{Terms: []Term{&Call{Name: "f", Args: []*Expr{
						{Terms: []Term{&StringLiteral{"a"}}},
						{Terms: []Term{&NilLiteral{}}},
						{Terms: []Term{&IntegerLiteral{3}}},
					}}}},
					{Terms: []Term{&Call{Name: "g", Args: []*Expr{}}}},
				}},
			},
			"f('a', null, 3);\ng();\n",
		},
		{
			// Any statement mentioning return keeps its text as is
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{},
					Body: &ExprList{Exprs: []*Expr{
						{Terms: []Term{&Call{Name: "early_return", Args: []*Expr{}}}},
					}},
				},
			},
			"function fun() {\nearly_return();\n}\n",
		},
		{
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{},
					Body: &ExprList{Exprs: []*Expr{
						{Terms: []Term{&StringLiteral{"no return here"}}},
					}},
				},
			},
			"function fun() {\n'no return here';\n}\n",
		},
		{
			// Only the last statement is considered
			Program{
				&FuncDef{
					Name: "fun",
					Params: []*Expr{},
					Body: &ExprList{Exprs: []*Expr{
						{Terms: []Term{&VarRef{"returned"}}},
						{Terms: []Term{&VarRef{"value"}}},
					}},
				},
			},
			"function fun() {\nreturned;\nreturn value;\n}\n",
		},
		{
			// String values are emitted without escaping
			Program{
				&ExprList{Exprs: []*Expr{
					{Terms: []Term{&StringLiteral{`a\b`}}},
				}},
			},
			"'a\\b';\n",
		},
		{
			Program{
				&FuncDef{Name: "a", Params: []*Expr{}, Body: &ExprList{Exprs: []*Expr{{Terms: []Term{&NilLiteral{}}}}}},
				&ExprList{Exprs: []*Expr{{Terms: []Term{&Call{Name: "a", Args: []*Expr{}}}}}},
				&FuncDef{Name: "b", Params: []*Expr{}, Body: &ExprList{Exprs: []*Expr{}}},
			},
			"function a() {\nreturn null;\n}\na();\nfunction b() {\n}\n",
		},
		{
			nil,
			"",
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Generate(c.data))
	}
}

func TestGeneratorLeavesProgramUntouched(t *testing.T) {
	body := &ExprList{Exprs: []*Expr{
		{Terms: []Term{&VarRef{"a"}, &Plus{}, &VarRef{"b"}}},
	}}
	program := Program{&FuncDef{Name: "f", Params: []*Expr{}, Body: body}}

	first := Generate(program)
	second := Generate(program)

	assert.Equal(t, first, second)
	assert.Equal(t, []Term{&VarRef{"a"}, &Plus{}, &VarRef{"b"}}, body.Exprs[0].Terms)
}
