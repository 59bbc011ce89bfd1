package lox

import "fmt"

// Node is a generic view of a syntax tree node, for structured dumps.
type Node struct {
	Kind     string  `yaml:"kind"`
	Line     int     `yaml:"line,omitempty"`
	Operator string  `yaml:"operator,omitempty"`
	Name     string  `yaml:"name,omitempty"`
	Value    string  `yaml:"value,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

func StmtNode(stmt Stmt) *Node {
	switch stmt := stmt.(type) {
	case *ExpressionStmt:
		return &Node{
			Kind:     "expression",
			Children: []*Node{ExprNode(stmt.Expr)},
		}
	case *PrintStmt:
		return &Node{
			Kind:     "print",
			Children: []*Node{ExprNode(stmt.Expr)},
		}
	case *VarStmt:
		node := &Node{
			Kind: "var",
			Line: stmt.Name.Line,
			Name: stmt.Name.Lexeme,
		}
		if stmt.Initializer != nil {
			node.Children = []*Node{ExprNode(stmt.Initializer)}
		}
		return node
	}
	panic(fmt.Errorf("unknown statement type: %T", stmt))
}

func ExprNode(expr Expr) *Node {
	switch expr := expr.(type) {
	case *LiteralExpr:
		return &Node{
			Kind:  "literal",
			Value: FormatLiteral(expr.Value),
		}
	case *GroupingExpr:
		return &Node{
			Kind:     "grouping",
			Children: []*Node{ExprNode(expr.Inner)},
		}
	case *UnaryExpr:
		return &Node{
			Kind:     "unary",
			Line:     expr.Operator.Line,
			Operator: expr.Operator.Lexeme,
			Children: []*Node{ExprNode(expr.Right)},
		}
	case *BinaryExpr:
		return &Node{
			Kind:     "binary",
			Line:     expr.Operator.Line,
			Operator: expr.Operator.Lexeme,
			Children: []*Node{ExprNode(expr.Left), ExprNode(expr.Right)},
		}
	case *VariableExpr:
		return &Node{
			Kind: "variable",
			Line: expr.Name.Line,
			Name: expr.Name.Lexeme,
		}
	case *AssignExpr:
		return &Node{
			Kind:     "assign",
			Line:     expr.Name.Line,
			Name:     expr.Name.Lexeme,
			Children: []*Node{ExprNode(expr.Value)},
		}
	}
	panic(fmt.Errorf("unknown expression type: %T", expr))
}
