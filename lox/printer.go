package lox

import (
	"fmt"
	"strings"
)

// PrettyPrint renders expr in fully parenthesized prefix form.
func PrettyPrint(expr Expr) string {
	var sb strings.Builder
	writeExpr(&sb, expr)
	return sb.String()
}

func PrettyPrintStmt(stmt Stmt) string {
	var sb strings.Builder
	switch stmt := stmt.(type) {
	case *ExpressionStmt:
		sb.WriteString("(expr ")
		writeExpr(&sb, stmt.Expr)
		sb.WriteString(")")
	case *PrintStmt:
		sb.WriteString("(print ")
		writeExpr(&sb, stmt.Expr)
		sb.WriteString(")")
	case *VarStmt:
		sb.WriteString("(var ")
		sb.WriteString(stmt.Name.Lexeme)
		if stmt.Initializer != nil {
			sb.WriteString(" = ")
			writeExpr(&sb, stmt.Initializer)
		}
		sb.WriteString(")")
	default:
		panic(fmt.Errorf("unknown statement type: %T", stmt))
	}
	return sb.String()
}

func writeExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case *LiteralExpr:
		sb.WriteString(FormatLiteral(expr.Value))
	case *GroupingExpr:
		sb.WriteString("(group ")
		writeExpr(sb, expr.Inner)
		sb.WriteString(")")
	case *UnaryExpr:
		sb.WriteString("(")
		sb.WriteString(expr.Operator.Lexeme)
		sb.WriteString(" ")
		writeExpr(sb, expr.Right)
		sb.WriteString(")")
	case *BinaryExpr:
		sb.WriteString("(")
		sb.WriteString(expr.Operator.Lexeme)
		sb.WriteString(" ")
		writeExpr(sb, expr.Left)
		sb.WriteString(" ")
		writeExpr(sb, expr.Right)
		sb.WriteString(")")
	case *VariableExpr:
		sb.WriteString("(var ")
		sb.WriteString(expr.Name.Lexeme)
		sb.WriteString(")")
	case *AssignExpr:
		sb.WriteString("(assign ")
		sb.WriteString(expr.Name.Lexeme)
		sb.WriteString(" = ")
		writeExpr(sb, expr.Value)
		sb.WriteString(")")
	default:
		panic(fmt.Errorf("unknown expression type: %T", expr))
	}
}
