package lox

import "fmt"

type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal Literal
	Line    int
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%v %s", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%v %s %s", t.Kind, t.Lexeme, FormatLiteral(t.Literal))
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	// single character
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// one or two characters
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:      "Invalid",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenDot:          "Dot",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSemicolon:    "Semicolon",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenAnd:          "And",
	TokenClass:        "Class",
	TokenElse:         "Else",
	TokenFalse:        "False",
	TokenFun:          "Fun",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenNil:          "Nil",
	TokenOr:           "Or",
	TokenPrint:        "Print",
	TokenReturn:       "Return",
	TokenSuper:        "Super",
	TokenThis:         "This",
	TokenTrue:         "True",
	TokenVar:          "Var",
	TokenWhile:        "While",
	TokenEOF:          "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var keywords = map[string]TokenKind{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}
