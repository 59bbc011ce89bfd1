package lox

import (
	"fmt"
	"io"
	"log/slog"
)

type Interpreter struct {
	output  io.Writer
	globals *Environment
	env     *Environment
	logger  *slog.Logger
}

func NewInterpreter(output io.Writer) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{
		output:  output,
		globals: globals,
		env:     globals,
	}
}

// Interpret executes statements in a fresh global scope, writing print output to output.
func Interpret(stmts []Stmt, output io.Writer) error {
	return NewInterpreter(output).Interpret(stmts)
}

// WithLogger enables debug tracing of executed statements.
func (i *Interpreter) WithLogger(logger *slog.Logger) *Interpreter {
	i.logger = logger
	return i
}

// WithEnclosing makes parent the enclosing scope of the global scope.
// Globals shadow the bindings of parent; assignments to names only parent defines reach parent.
func (i *Interpreter) WithEnclosing(parent *Environment) *Interpreter {
	i.globals.Parent = parent
	return i
}

func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret executes statements in order against the global scope, stopping at the first error.
// Bindings persist across calls.
func (i *Interpreter) Interpret(stmts []Stmt) error {
	return i.ExecuteIn(stmts, i.globals)
}

// ExecuteIn executes statements with env as the innermost scope.
func (i *Interpreter) ExecuteIn(stmts []Stmt, env *Environment) error {
	prev := i.env
	i.env = env
	defer func() {
		i.env = prev
	}()
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch stmt := stmt.(type) {

	case *ExpressionStmt:
		i.trace("expression statement", stmt.Expr)
		_, err := i.Evaluate(stmt.Expr)
		return err

	case *PrintStmt:
		i.trace("print statement", stmt.Expr)
		value, err := i.Evaluate(stmt.Expr)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(i.output, FormatValue(value)+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if f, ok := i.output.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
		}
		return nil

	case *VarStmt:
		i.trace("var statement", stmt.Initializer)
		var value Value = Nil{}
		if stmt.Initializer != nil {
			var err error
			value, err = i.Evaluate(stmt.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(stmt.Name.Lexeme, value)
		return nil

	}
	panic(fmt.Errorf("unknown statement type: %T", stmt))
}

func (i *Interpreter) trace(what string, expr Expr) {
	if i.logger == nil {
		return
	}
	args := []any{}
	if expr != nil {
		args = append(args, "expr", PrettyPrint(expr))
	}
	i.logger.Debug(what, args...)
}

func (i *Interpreter) Evaluate(expr Expr) (Value, error) {
	switch expr := expr.(type) {

	case *LiteralExpr:
		value, ok := expr.Value.(Value)
		if !ok {
			panic(fmt.Errorf("literal %v cannot be evaluated", expr.Value))
		}
		return value, nil

	case *GroupingExpr:
		return i.Evaluate(expr.Inner)

	case *UnaryExpr:
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		switch expr.Operator.Kind {
		case TokenMinus:
			n, ok := right.(Number)
			if !ok {
				return nil, &RuntimeError{
					Kind:  OperandMustBeANumber,
					Token: expr.Operator,
				}
			}
			return -n, nil
		case TokenBang:
			return Bool(!IsTruthy(right)), nil
		}
		panic(fmt.Errorf("unknown unary operator: %v", expr.Operator.Kind))

	case *BinaryExpr:
		left, err := i.Evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		return binaryOp(expr.Operator, left, right)

	case *VariableExpr:
		return i.env.Get(expr.Name)

	case *AssignExpr:
		value, err := i.Evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(expr.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	}
	panic(fmt.Errorf("unknown expression type: %T", expr))
}

func binaryOp(op Token, left, right Value) (Value, error) {
	switch op.Kind {
	case TokenEqualEqual:
		return Bool(Equal(left, right)), nil
	case TokenBangEqual:
		return Bool(!Equal(left, right)), nil
	case TokenPlus:
		switch l := left.(type) {
		case Number:
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		case String:
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return nil, &RuntimeError{
			Kind:  OperandsMustBeTwoNumbersOrTwoStrings,
			Token: op,
		}
	}

	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return nil, &RuntimeError{
			Kind:  OperandsMustBeNumbers,
			Token: op,
		}
	}
	switch op.Kind {
	case TokenMinus:
		return l - r, nil
	case TokenStar:
		return l * r, nil
	case TokenSlash:
		return l / r, nil
	case TokenGreater:
		return Bool(l > r), nil
	case TokenGreaterEqual:
		return Bool(l >= r), nil
	case TokenLess:
		return Bool(l < r), nil
	case TokenLessEqual:
		return Bool(l <= r), nil
	}
	panic(fmt.Errorf("unknown binary operator: %v", op.Kind))
}
