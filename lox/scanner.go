package lox

import (
	"strconv"
	"unicode/utf8"
)

type Scanner struct {
	source  string
	start   int
	current int
	line    int
	tokens  []Token
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Scan converts source into tokens terminated by an EOF token.
// The first lexical error aborts scanning.
func Scan(source string) ([]Token, error) {
	return NewScanner(source).Scan()
}

func (s *Scanner) Scan() ([]Token, error) {
	for !s.atEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{
		Kind: TokenEOF,
		Line: s.line,
	})
	return s.tokens, nil
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	if r == '\n' {
		s.line++
	}
	return r
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.atEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.peek() != expected || s.atEnd() {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) emit(kind TokenKind, literal Literal) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) either(next rune, matched TokenKind, single TokenKind) {
	if s.match(next) {
		s.emit(matched, nil)
	} else {
		s.emit(single, nil)
	}
}

func (s *Scanner) scanToken() error {
	r := s.advance()
	switch r {
	case '(':
		s.emit(TokenLeftParen, nil)
	case ')':
		s.emit(TokenRightParen, nil)
	case '{':
		s.emit(TokenLeftBrace, nil)
	case '}':
		s.emit(TokenRightBrace, nil)
	case ',':
		s.emit(TokenComma, nil)
	case '.':
		s.emit(TokenDot, nil)
	case '-':
		s.emit(TokenMinus, nil)
	case '+':
		s.emit(TokenPlus, nil)
	case ';':
		s.emit(TokenSemicolon, nil)
	case '*':
		s.emit(TokenStar, nil)
	case '!':
		s.either('=', TokenBangEqual, TokenBang)
	case '=':
		s.either('=', TokenEqualEqual, TokenEqual)
	case '<':
		s.either('=', TokenLessEqual, TokenLess)
	case '>':
		s.either('=', TokenGreaterEqual, TokenGreater)
	case '/':
		if s.match('/') {
			// comment
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.emit(TokenSlash, nil)
		}
	case ' ', '\r', '\t', '\n':
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(r):
			s.scanNumber()
		case isAlpha(r):
			s.scanIdentifier()
		default:
			return &ScanError{
				Kind: UnexpectedCharacter,
				Line: s.line,
				Char: r,
			}
		}
	}
	return nil
}

func (s *Scanner) scanString() error {
	for s.peek() != '"' && !s.atEnd() {
		s.advance()
	}
	if s.atEnd() {
		return &ScanError{
			Kind: UnterminatedString,
			Line: s.line,
		}
	}
	// closing quote
	s.advance()
	s.emit(TokenString, String(s.source[s.start+1:s.current-1]))
	return nil
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	// out of range literals decode to +Inf
	f, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.emit(TokenNumber, Number(f))
}

func (s *Scanner) scanIdentifier() {
	for r := s.peek(); isAlpha(r) || isDigit(r); r = s.peek() {
		s.advance()
	}
	text := s.source[s.start:s.current]
	kind, ok := keywords[text]
	if !ok {
		s.emit(TokenIdentifier, Identifier(text))
		return
	}
	switch kind {
	case TokenNil:
		s.emit(kind, Nil{})
	case TokenTrue:
		s.emit(kind, Bool(true))
	case TokenFalse:
		s.emit(kind, Bool(false))
	default:
		s.emit(kind, nil)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}
