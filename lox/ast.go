package lox

// Expr is one of *LiteralExpr, *GroupingExpr, *UnaryExpr, *BinaryExpr,
// *VariableExpr or *AssignExpr.
type Expr interface {
	exprNode()
}

type LiteralExpr struct {
	Value Literal
}

type GroupingExpr struct {
	Inner Expr
}

type UnaryExpr struct {
	Operator Token
	Right    Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type VariableExpr struct {
	Name Token
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}

// Stmt is one of *ExpressionStmt, *PrintStmt or *VarStmt.
type Stmt interface {
	stmtNode()
}

type ExpressionStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

type VarStmt struct {
	Name        Token
	Initializer Expr // nil when absent
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
