package rbjs

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// OutlineBuilder describes the top-level surface of a translated program as
// an LLVM module. Every value is an opaque i8*, functions are declarations
// only and top-level assignments become null-initialised globals.
type OutlineBuilder struct {
	mod      *ir.Module
	declared map[string]bool
}

func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{
		mod:      ir.NewModule(),
		declared: make(map[string]bool),
	}
}

func Outline(program Program) *ir.Module {
	b := NewOutlineBuilder()
	for _, node := range program {
		b.visit(node)
	}

	return b.mod
}

func (b *OutlineBuilder) visit(node TopLevel) {
	switch n := node.(type) {
	case *FuncDef:
		b.function(n)
	case *ExprList:
		for _, expr := range n.Exprs {
			b.global(expr)
		}
	}
}

func (b *OutlineBuilder) function(def *FuncDef) {
	if b.declared[def.Name] {
		return
	}
	b.declared[def.Name] = true

	var params []*ir.Param
	for _, param := range def.Params {
		params = append(params, ir.NewParam(paramName(param), types.I8Ptr))
	}

	b.mod.NewFunc(def.Name, types.I8Ptr, params...)
}

// global declares name for statements shaped like `name = ...`.
func (b *OutlineBuilder) global(expr *Expr) {
	if len(expr.Terms) < 2 {
		return
	}

	ref, ok := expr.Terms[0].(*VarRef)
	if !ok {
		return
	}

	if _, ok := expr.Terms[1].(*AssignOp); !ok {
		return
	}

	if b.declared[ref.Name] {
		return
	}
	b.declared[ref.Name] = true

	b.mod.NewGlobalDef(ref.Name, constant.NewNull(types.I8Ptr))
}

func paramName(param *Expr) string {
	if len(param.Terms) == 0 {
		return ""
	}

	if ref, ok := param.Terms[0].(*VarRef); ok {
		return ref.Name
	}

	return ""
}
