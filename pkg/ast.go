package rbjs

// Node is implemented by every AST type in this package and nothing else.
type Node interface {
	node()
}

// Term is anything that may appear in Expr.Terms.
type Term interface {
	Node
	term()
}

// TopLevel is either a *FuncDef or an *ExprList.
type TopLevel interface {
	Node
	topLevel()
}

type Program []TopLevel

type FuncDef struct {
	Name   string
	Params []*Expr
	Body   *ExprList
}

type NilLiteral struct{}

type StringLiteral struct {
	Value string
}

type IntegerLiteral struct {
	Value int64
}

type Call struct {
	Name string
	Args []*Expr
}

type VarRef struct {
	Name string
}

type Plus struct{}
type Minus struct{}
type Star struct{}
type Slash struct{}
type AssignOp struct{}

// Expr is a flat run of operands and operators in source order. Operators
// are not grouped with their operands.
type Expr struct {
	Terms []Term
}

type ExprList struct {
	Exprs []*Expr
}

func (*FuncDef) node()        {}
func (*NilLiteral) node()     {}
func (*StringLiteral) node()  {}
func (*IntegerLiteral) node() {}
func (*Call) node()           {}
func (*VarRef) node()         {}
func (*Plus) node()           {}
func (*Minus) node()          {}
func (*Star) node()           {}
func (*Slash) node()          {}
func (*AssignOp) node()       {}
func (*Expr) node()           {}
func (*ExprList) node()       {}

func (*NilLiteral) term()     {}
func (*StringLiteral) term()  {}
func (*IntegerLiteral) term() {}
func (*Call) term()           {}
func (*VarRef) term()         {}
func (*Plus) term()           {}
func (*Minus) term()          {}
func (*Star) term()           {}
func (*Slash) term()          {}
func (*AssignOp) term()       {}

func (*FuncDef) topLevel()  {}
func (*ExprList) topLevel() {}
