package monkey

// Precedence is the binding power of an operator. Only the ordering matters.
type Precedence int

const (
	LOWEST      Precedence = iota
	EQUALS                 // == or !=
	LESSGREATER            // > or <
	SUM                    // + or -
	PRODUCT                // * or /
	PREFIX                 // -X or !X
	CALL                   // myFunction(X)
	INDEX                  // myArray[X]
)

var precedences = map[TokenType]Precedence{
	EQUAL_EQUAL:  EQUALS,
	BANG_EQUAL:   EQUALS,
	LESS:         LESSGREATER,
	GREATER:      LESSGREATER,
	PLUS:         SUM,
	MINUS:        SUM,
	STAR:         PRODUCT,
	SLASH:        PRODUCT,
	LEFT_PAREN:   CALL,
	LEFT_BRACKET: INDEX,
}

func precedenceOf(typ TokenType) Precedence {
	if p, ok := precedences[typ]; ok {
		return p
	}
	return LOWEST
}
