package rbjs

import (
	"fmt"
	"strconv"
	"strings"
)

type Generator struct {
	program Program
}

func NewGenerator(program Program) *Generator {
	return &Generator{
		program: program,
	}
}

func Generate(program Program) string {
	return NewGenerator(program).Do()
}

func (g *Generator) Do() string {
	var js strings.Builder
	for _, node := range g.program {
		switch n := node.(type) {
		case *FuncDef:
			js.WriteString(g.funcDef(n))
		case *ExprList:
			js.WriteString(strings.Join(g.statements(n), ""))
		}
	}

	return js.String()
}

func (g *Generator) funcDef(def *FuncDef) string {
	return "function " + def.Name + "(" + g.exprs(def.Params) + ") {\n" + g.body(def.Body) + "}\n"
}

// body adds the implicit return of the last statement unless its text
// already mentions return anywhere.
func (g *Generator) body(list *ExprList) string {
	stmts := g.statements(list)
	if last := len(stmts) - 1; last >= 0 && !strings.Contains(stmts[last], "return") {
		stmts[last] = "return " + stmts[last]
	}

	return strings.Join(stmts, "")
}

func (g *Generator) statements(list *ExprList) []string {
	if list == nil {
		return nil
	}

	stmts := make([]string, 0, len(list.Exprs))
	for _, expr := range list.Exprs {
		stmts = append(stmts, g.expr(expr)+";\n")
	}

	return stmts
}

func (g *Generator) exprs(exprs []*Expr) string {
	rendered := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		rendered = append(rendered, g.expr(expr))
	}

	return strings.Join(rendered, ", ")
}

func (g *Generator) expr(expr *Expr) string {
	terms := make([]string, 0, len(expr.Terms))
	for _, t := range expr.Terms {
		terms = append(terms, g.term(t))
	}

	return strings.Join(terms, " ")
}

func (g *Generator) term(t Term) string {
	switch e := t.(type) {
	case *NilLiteral:
		return "null"
	case *StringLiteral:
		// TODO: escape embedded quotes and backslashes, fixtures currently expect the raw value
		return "'" + e.Value + "'"
	case *IntegerLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *Call:
		return e.Name + "(" + g.exprs(e.Args) + ")"
	case *VarRef:
		return e.Name
	case *Plus:
		return "+"
	case *Minus:
		return "-"
	case *Star:
		return "*"
	case *Slash:
		return "/"
	case *AssignOp:
		return "="
	default:
		panic(fmt.Sprintf("unexpected term: %T", t))
	}
}
