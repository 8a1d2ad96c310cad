package monkey

//go:generate go run ../cmd/ast_codegen .

// Parse turns source text into a program. On failure the returned error is a
// *multierror.Error holding every *ParseError found, and the program is nil.
func Parse(source string) (*Program, error) {
	return NewParser(NewLexer(source)).ParseProgram()
}

// Evaluate evaluates node in env. Bindings made by let statements at the top
// level stay in env, so successive calls can share state.
func Evaluate(node Node, env *Environment) (Value, error) {
	return NewInterpreter(env).Evaluate(node)
}

// Run parses and evaluates source in env, sending any error to reporter. It
// returns nil if anything went wrong.
func Run(source string, env *Environment, reporter Reporter) Value {
	program, err := Parse(source)
	if err != nil {
		reporter.Report(err)
		return nil
	}
	val, err := Evaluate(program, env)
	if err != nil {
		reporter.Report(err)
		return nil
	}
	return val
}
