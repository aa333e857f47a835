package turtle

import (
	"fmt"
	"strings"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenPrefixDecl
	tokenPName
	tokenIRIRef
	tokenString
	tokenA
	tokenDot
	tokenComma
	tokenSemicolon
)

// token is one lexical unit. For tokenPName, prefix holds the part before
// the colon and value the local name; for string and IRI tokens, value holds
// the decoded content.
type token struct {
	typ    tokenType
	pos    Pos
	prefix string
	value  string
}

// describe renders a token for SyntaxError messages.
func (t token) describe() string {
	switch t.typ {
	case tokenEOF:
		return "end of input"
	case tokenPrefixDecl:
		return "'@prefix'"
	case tokenPName:
		return fmt.Sprintf("%q", t.prefix+":"+t.value)
	case tokenIRIRef:
		return fmt.Sprintf("<%s>", t.value)
	case tokenString:
		return "string literal"
	case tokenA:
		return "'a'"
	case tokenDot:
		return "'.'"
	case tokenComma:
		return "','"
	case tokenSemicolon:
		return "';'"
	default:
		return "unknown token"
	}
}

// scanner produces tokens from Turtle-subset source text, tracking line and
// column for error reporting. Whitespace and '#' line comments are
// insignificant everywhere except inside literals.
type scanner struct {
	src  string
	off  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

// advance consumes one byte, updating line and column. Column counts runes:
// UTF-8 continuation bytes do not advance it.
func (s *scanner) advance() byte {
	b := s.src[s.off]
	s.off++
	if b == '\n' {
		s.line++
		s.col = 1
	} else if b&0xC0 != 0x80 {
		s.col++
	}
	return b
}

func (s *scanner) pos() Pos {
	return Pos{Line: s.line, Column: s.col}
}

// skipSpace consumes whitespace and line comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '#':
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func isNameByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b >= 0x80
}

// scan returns the next token, or a *SyntaxError for input that cannot form
// one.
func (s *scanner) scan() (token, error) {
	s.skipSpace()
	pos := s.pos()
	if s.eof() {
		return token{typ: tokenEOF, pos: pos}, nil
	}

	switch b := s.peek(); {
	case b == '.':
		s.advance()
		return token{typ: tokenDot, pos: pos}, nil
	case b == ',':
		s.advance()
		return token{typ: tokenComma, pos: pos}, nil
	case b == ';':
		s.advance()
		return token{typ: tokenSemicolon, pos: pos}, nil
	case b == '<':
		return s.scanIRIRef(pos)
	case b == '"':
		return s.scanString(pos)
	case b == '@':
		return s.scanDirective(pos)
	case b == ':' || isNameByte(b):
		return s.scanName(pos)
	default:
		return token{}, &SyntaxError{Pos: pos, Expected: "a term, '.', ',' or ';'", Found: fmt.Sprintf("%q", string(b))}
	}
}

func (s *scanner) scanIRIRef(pos Pos) (token, error) {
	s.advance() // '<'
	var sb strings.Builder
	for !s.eof() {
		b := s.peek()
		if b == '>' {
			s.advance()
			return token{typ: tokenIRIRef, pos: pos, value: sb.String()}, nil
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(s.advance())
	}
	return token{}, &SyntaxError{Pos: pos, Expected: "'>' closing IRI reference", Found: "end of line"}
}

// scanDirective recognizes '@prefix'; no other directive exists in this
// subset.
func (s *scanner) scanDirective(pos Pos) (token, error) {
	s.advance() // '@'
	var sb strings.Builder
	for !s.eof() && isNameByte(s.peek()) {
		sb.WriteByte(s.advance())
	}
	if word := sb.String(); word != "prefix" {
		return token{}, &SyntaxError{Pos: pos, Expected: "'@prefix'", Found: fmt.Sprintf("%q", "@"+word)}
	}
	return token{typ: tokenPrefixDecl, pos: pos}, nil
}

// scanName recognizes prefixed names ("hpc:FalseSharing", ":Local", "hpc:")
// and the bare type shorthand 'a'. A bare word other than 'a' is malformed.
func (s *scanner) scanName(pos Pos) (token, error) {
	var sb strings.Builder
	for !s.eof() && isNameByte(s.peek()) {
		sb.WriteByte(s.advance())
	}
	prefix := sb.String()
	if s.peek() != ':' {
		if prefix == "a" {
			return token{typ: tokenA, pos: pos}, nil
		}
		return token{}, &SyntaxError{Pos: pos, Expected: "':' in prefixed name", Found: fmt.Sprintf("%q", prefix)}
	}
	s.advance() // ':'
	var local strings.Builder
	for !s.eof() && isNameByte(s.peek()) {
		local.WriteByte(s.advance())
	}
	return token{typ: tokenPName, pos: pos, prefix: prefix, value: local.String()}, nil
}

func (s *scanner) scanString(pos Pos) (token, error) {
	if strings.HasPrefix(s.src[s.off:], `"""`) {
		return s.scanLongString(pos)
	}
	s.advance() // '"'
	var sb strings.Builder
	for !s.eof() {
		b := s.peek()
		switch b {
		case '"':
			s.advance()
			return token{typ: tokenString, pos: pos, value: sb.String()}, nil
		case '\n':
			return token{}, &SyntaxError{Pos: pos, Expected: `'"' closing string literal`, Found: "end of line"}
		case '\\':
			s.advance()
			if s.eof() {
				return token{}, &SyntaxError{Pos: pos, Expected: `'"' closing string literal`, Found: "end of input"}
			}
			switch esc := s.advance(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"', '\\':
				sb.WriteByte(esc)
			default:
				return token{}, &SyntaxError{Pos: pos, Expected: `escape sequence \n, \t, \r, \" or \\`, Found: fmt.Sprintf("%q", `\`+string(esc))}
			}
		default:
			sb.WriteByte(s.advance())
		}
	}
	return token{}, &SyntaxError{Pos: pos, Expected: `'"' closing string literal`, Found: "end of input"}
}

// scanLongString reads a triple-quoted literal. The content between the
// delimiters is taken verbatim, comment markers and newlines included;
// whitespace is trimmed only at the outermost boundary, never per-line. An
// unterminated literal is reported at end of input with the literal's start
// position.
func (s *scanner) scanLongString(pos Pos) (token, error) {
	s.advance() // '"'
	s.advance() // '"'
	s.advance() // '"'
	start := s.off
	for s.off < len(s.src) {
		if strings.HasPrefix(s.src[s.off:], `"""`) {
			content := strings.TrimSpace(s.src[start:s.off])
			s.advance()
			s.advance()
			s.advance()
			return token{typ: tokenString, pos: pos, value: content}, nil
		}
		s.advance()
	}
	return token{}, &SyntaxError{Pos: pos, Expected: `'"""' closing multi-line literal`, Found: "end of input"}
}
