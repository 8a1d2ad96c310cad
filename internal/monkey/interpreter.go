package monkey

import (
	"fortio.org/log"
)

// Interpreter evaluates the syntax tree against an environment. It implements
// ExprVisitor, StmtVisitor and LiteralVisitor.
//
// A return statement evaluates to a *ReturnValue. Blocks stop at the first
// *ReturnValue and hand it up unchanged, function calls unwrap it.
type Interpreter struct {
	environment *Environment
}

// NewInterpreter creates an interpreter whose outermost scope is environment.
func NewInterpreter(environment *Environment) *Interpreter {
	return &Interpreter{environment}
}

// Evaluate reduces node to a value. Evaluation stops at the first runtime
// error, which is always an *Error.
func (in *Interpreter) Evaluate(node Node) (Value, error) {
	var (
		val Value
		err error
	)
	switch node := node.(type) {
	case *Program:
		return in.evalProgram(node)
	case Stmt:
		val, err = in.exec(node)
	case Expr:
		val, err = in.eval(node)
	default:
		return nil, newError("unknown node type: %T", node)
	}
	if err != nil {
		return nil, err
	}
	return unwrapReturn(val), nil
}

func (in *Interpreter) evalProgram(program *Program) (Value, error) {
	var result Value = NULL_OBJ
	for _, stmt := range program.Statements {
		val, err := in.exec(stmt)
		if err != nil {
			log.LogVf("eval %q failed: %v", stmt, err)
			return nil, err
		}
		if ret, ok := val.(*ReturnValue); ok {
			return ret.Value, nil
		}
		result = val
	}
	return result, nil
}

func (in *Interpreter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	val, err := in.eval(stmt.Value)
	if err != nil || isReturn(val) {
		return val, err
	}
	log.LogVf("let %s = %s", stmt.Name, val.Inspect())
	return in.environment.Set(stmt.Name, val), nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	val, err := in.eval(stmt.Value)
	if err != nil || isReturn(val) {
		return val, err
	}
	return &ReturnValue{val}, nil
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return in.eval(stmt.Expr)
}

func (in *Interpreter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	val, ok := in.environment.Get(expr.Name)
	if !ok {
		return nil, newError("identifier not found: %s", expr.Name)
	}
	return val, nil
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return in.literal(expr.Value)
}

func (in *Interpreter) VisitPrefixExpr(expr *PrefixExpr) (interface{}, error) {
	right, err := in.eval(expr.Right)
	if err != nil || isReturn(right) {
		return right, err
	}

	switch expr.Op {
	case BANG:
		switch right {
		case TRUE_OBJ:
			return FALSE_OBJ, nil
		case FALSE_OBJ, NULL_OBJ:
			return TRUE_OBJ, nil
		}
		return FALSE_OBJ, nil
	case MINUS:
		if i, ok := right.(*Integer); ok {
			return &Integer{-i.Value}, nil
		}
	}
	return nil, newError("unknown operator: %s%s", expr.Op, right.Type())
}

func (in *Interpreter) VisitInfixExpr(expr *InfixExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil || isReturn(left) {
		return left, err
	}
	right, err := in.eval(expr.Right)
	if err != nil || isReturn(right) {
		return right, err
	}
	return evalInfix(expr.Op, left, right)
}

func (in *Interpreter) VisitPostfixExpr(expr *PostfixExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil || isReturn(left) {
		return left, err
	}
	return nil, newError("unknown operator: %s%s", left.Type(), expr.Op)
}

func (in *Interpreter) VisitIfExpr(expr *IfExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil || isReturn(cond) {
		return cond, err
	}
	// Bindings made in a branch do not outlive it.
	if isTruthy(cond) {
		return in.execBlock(expr.Consequence, NewEnclosedEnvironment(in.environment))
	}
	if expr.Alternative != nil {
		return in.execBlock(expr.Alternative, NewEnclosedEnvironment(in.environment))
	}
	return NULL_OBJ, nil
}

func (in *Interpreter) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	return &Function{expr.Params, expr.Body, in.environment}, nil
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil || isReturn(callee) {
		return callee, err
	}
	fn, ok := callee.(*Function)
	if !ok {
		return nil, newError("not a function: %s", callee.Type())
	}

	args := make([]Value, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := in.eval(argExpr)
		if err != nil || isReturn(arg) {
			return arg, err
		}
		args = append(args, arg)
	}
	log.LogVf("call %s with %d argument(s)", expr.Callee, len(args))
	return in.call(fn, args)
}

func (in *Interpreter) VisitIndexExpr(expr *IndexExpr) (interface{}, error) {
	left, err := in.eval(expr.Left)
	if err != nil || isReturn(left) {
		return left, err
	}
	index, err := in.eval(expr.Index)
	if err != nil || isReturn(index) {
		return index, err
	}

	switch left := left.(type) {
	case *Array:
		i, ok := index.(*Integer)
		if !ok {
			return nil, newError("index operator not supported: %s[%s]", left.Type(), index.Type())
		}
		if i.Value < 0 || i.Value >= int64(len(left.Elements)) {
			return NULL_OBJ, nil
		}
		return left.Elements[i.Value], nil
	case *Hash:
		key, ok := index.(Hashable)
		if !ok {
			return nil, newError("unusable as hash key: %s", index.Type())
		}
		if val, ok := left.Get(key); ok {
			return val, nil
		}
		return NULL_OBJ, nil
	}
	return nil, newError("index operator not supported: %s", left.Type())
}

func (in *Interpreter) VisitIntLiteral(literal *IntLiteral) (interface{}, error) {
	return &Integer{literal.Value}, nil
}

func (in *Interpreter) VisitStringLiteral(literal *StringLiteral) (interface{}, error) {
	return &String{literal.Value}, nil
}

func (in *Interpreter) VisitBoolLiteral(literal *BoolLiteral) (interface{}, error) {
	return nativeBoolToBoolean(literal.Value), nil
}

func (in *Interpreter) VisitArrayLiteral(literal *ArrayLiteral) (interface{}, error) {
	elements := make([]Value, 0, len(literal.Elements))
	for _, elExpr := range literal.Elements {
		el, err := in.eval(elExpr)
		if err != nil || isReturn(el) {
			return el, err
		}
		elements = append(elements, el)
	}
	return &Array{elements}, nil
}

func (in *Interpreter) VisitHashLiteral(literal *HashLiteral) (interface{}, error) {
	hash := newHash()
	for _, pair := range literal.Pairs {
		key, err := in.eval(pair.Key)
		if err != nil || isReturn(key) {
			return key, err
		}
		hashable, ok := key.(Hashable)
		if !ok {
			return nil, newError("unusable as hash key: %s", key.Type())
		}
		val, err := in.eval(pair.Value)
		if err != nil || isReturn(val) {
			return val, err
		}
		hash.Set(hashable, val)
	}
	return hash, nil
}

// call runs the body of fn in a new scope enclosed by the scope fn was
// defined in, so free names resolve lexically.
func (in *Interpreter) call(fn *Function, args []Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, newError("wrong number of arguments: want=%d, got=%d", len(fn.Params), len(args))
	}
	env := NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		env.Set(param, args[i])
	}
	val, err := in.execBlock(fn.Body, env)
	if err != nil {
		return nil, err
	}
	return unwrapReturn(val), nil
}

// execBlock runs statements in environment and restores the previous
// environment afterwards. A *ReturnValue stops the block and is returned
// as-is.
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) (Value, error) {
	previous := in.environment
	in.environment = environment
	defer func() {
		in.environment = previous
	}()

	var result Value = NULL_OBJ
	for _, stmt := range statements {
		val, err := in.exec(stmt)
		if err != nil {
			return nil, err
		}
		if isReturn(val) {
			return val, nil
		}
		result = val
	}
	return result, nil
}

func (in *Interpreter) literal(literal Literal) (Value, error) {
	val, err := literal.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

func (in *Interpreter) exec(stmt Stmt) (Value, error) {
	val, err := stmt.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	log.LogVf("eval %s", expr)
	val, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

func evalInfix(op TokenType, left, right Value) (Value, error) {
	switch {
	case left.Type() == INTEGER_VALUE && right.Type() == INTEGER_VALUE:
		return evalIntegerInfix(op, left.(*Integer).Value, right.(*Integer).Value)
	case left.Type() == STRING_VALUE && right.Type() == STRING_VALUE:
		return evalStringInfix(op, left.(*String).Value, right.(*String).Value)
	case left.Type() != right.Type():
		return nil, newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	case left.Type() == BOOLEAN_VALUE:
		lhs, rhs := left.(*Boolean).Value, right.(*Boolean).Value
		switch op {
		case EQUAL_EQUAL:
			return nativeBoolToBoolean(lhs == rhs), nil
		case BANG_EQUAL:
			return nativeBoolToBoolean(lhs != rhs), nil
		}
	default:
		switch op {
		case EQUAL_EQUAL:
			return nativeBoolToBoolean(left == right), nil
		case BANG_EQUAL:
			return nativeBoolToBoolean(left != right), nil
		}
	}
	return nil, newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
}

func evalIntegerInfix(op TokenType, lhs, rhs int64) (Value, error) {
	switch op {
	case PLUS:
		return &Integer{lhs + rhs}, nil
	case MINUS:
		return &Integer{lhs - rhs}, nil
	case STAR:
		return &Integer{lhs * rhs}, nil
	case SLASH:
		if rhs == 0 {
			return nil, newError("division by zero")
		}
		// Go's integer division truncates toward zero.
		return &Integer{lhs / rhs}, nil
	case LESS:
		return nativeBoolToBoolean(lhs < rhs), nil
	case GREATER:
		return nativeBoolToBoolean(lhs > rhs), nil
	case EQUAL_EQUAL:
		return nativeBoolToBoolean(lhs == rhs), nil
	case BANG_EQUAL:
		return nativeBoolToBoolean(lhs != rhs), nil
	}
	return nil, newError("unknown operator: %s %s %s", INTEGER_VALUE, op, INTEGER_VALUE)
}

func evalStringInfix(op TokenType, lhs, rhs string) (Value, error) {
	switch op {
	case PLUS:
		return &String{lhs + rhs}, nil
	case EQUAL_EQUAL:
		return nativeBoolToBoolean(lhs == rhs), nil
	case BANG_EQUAL:
		return nativeBoolToBoolean(lhs != rhs), nil
	}
	return nil, newError("unknown operator: %s %s %s", STRING_VALUE, op, STRING_VALUE)
}

func isReturn(val Value) bool {
	_, ok := val.(*ReturnValue)
	return ok
}

func unwrapReturn(val Value) Value {
	if ret, ok := val.(*ReturnValue); ok {
		return ret.Value
	}
	return val
}
