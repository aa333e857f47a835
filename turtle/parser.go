// Package turtle parses the Turtle subset used by the ontograph engine:
// prefix declarations, statements terminated by '.', object lists separated
// by ',', predicate chains separated by ';', the 'a' type shorthand, plain
// and triple-quoted literals, and '#' line comments.
//
// The parser resolves prefixed names against the prefixes declared earlier
// in the same input; the prefix table is local to one Parse call, so
// concurrent parses never interfere. Blank nodes, collections, datatypes and
// language tags are outside the subset and rejected as syntax errors.
package turtle

import "github.com/c360studio/ontograph/vocabulary"

// Object is one entry of an object list: either a resolved resource IRI or a
// literal text value.
type Object struct {
	Value   string
	Literal bool
}

// Statement is one parsed (subject, predicate, object-list) record. A source
// statement using ';' chains or ',' lists expands into one Statement per
// (subject, predicate) pair, objects in source order.
type Statement struct {
	Subject   string
	Predicate string
	Objects   []Object
}

type parser struct {
	sc       *scanner
	tok      token
	prefixes map[string]string
}

// Parse consumes source text and returns its parse records, or the first
// error encountered. Parsing is all-or-nothing: on error no records are
// returned.
func Parse(src string) ([]Statement, error) {
	p := &parser{sc: newScanner(src), prefixes: make(map[string]string)}
	if err := p.next(); err != nil {
		return nil, err
	}

	var stmts []Statement
	for p.tok.typ != tokenEOF {
		if p.tok.typ == tokenPrefixDecl {
			if err := p.parsePrefixDecl(); err != nil {
				return nil, err
			}
			continue
		}
		parsed, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, parsed...)
	}
	return stmts, nil
}

func (p *parser) next() error {
	tok, err := p.sc.scan()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parsePrefixDecl handles '@prefix p: <namespace> .'. A declaration is
// active for the remainder of the parse; redeclaring a prefix rebinds it.
func (p *parser) parsePrefixDecl() error {
	if err := p.next(); err != nil {
		return err
	}
	if p.tok.typ != tokenPName || p.tok.value != "" {
		return &SyntaxError{Pos: p.tok.pos, Expected: "prefix name ending in ':'", Found: p.tok.describe()}
	}
	prefix := p.tok.prefix

	if err := p.next(); err != nil {
		return err
	}
	if p.tok.typ != tokenIRIRef {
		return &SyntaxError{Pos: p.tok.pos, Expected: "namespace IRI", Found: p.tok.describe()}
	}
	p.prefixes[prefix] = p.tok.value

	if err := p.next(); err != nil {
		return err
	}
	if p.tok.typ != tokenDot {
		return &SyntaxError{Pos: p.tok.pos, Expected: "'.' ending prefix declaration", Found: p.tok.describe()}
	}
	return p.next()
}

// parseStatement handles 'subject verb objects (';' verb objects)* .',
// producing one record per verb. A trailing ';' before the '.' is accepted,
// matching common Turtle style.
func (p *parser) parseStatement() ([]Statement, error) {
	if p.tok.typ == tokenSemicolon {
		return nil, &SyntaxError{Pos: p.tok.pos, Expected: "a subject before ';' (no subject in scope)", Found: p.tok.describe()}
	}
	subject, err := p.parseResource("subject")
	if err != nil {
		return nil, err
	}

	var stmts []Statement
	for {
		predicate, err := p.parseVerb()
		if err != nil {
			return nil, err
		}
		objects, err := p.parseObjectList()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, Statement{Subject: subject, Predicate: predicate, Objects: objects})

		switch p.tok.typ {
		case tokenDot:
			return stmts, p.next()
		case tokenSemicolon:
			if err := p.next(); err != nil {
				return nil, err
			}
			if p.tok.typ == tokenDot {
				return stmts, p.next()
			}
		default:
			return nil, &SyntaxError{Pos: p.tok.pos, Expected: "'.', ';' or ','", Found: p.tok.describe()}
		}
	}
}

func (p *parser) parseVerb() (string, error) {
	if p.tok.typ == tokenA {
		if err := p.next(); err != nil {
			return "", err
		}
		return vocabulary.RDFType, nil
	}
	return p.parseResource("predicate")
}

func (p *parser) parseResource(role string) (string, error) {
	switch p.tok.typ {
	case tokenPName:
		iri, err := p.resolve(p.tok)
		if err != nil {
			return "", err
		}
		return iri, p.next()
	case tokenIRIRef:
		iri := p.tok.value
		return iri, p.next()
	default:
		return "", &SyntaxError{Pos: p.tok.pos, Expected: "a " + role, Found: p.tok.describe()}
	}
}

// parseObjectList handles 'object (, object)*'. A trailing comma is a
// syntax error.
func (p *parser) parseObjectList() ([]Object, error) {
	var objects []Object
	for {
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
		if p.tok.typ != tokenComma {
			return objects, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.typ == tokenDot || p.tok.typ == tokenSemicolon || p.tok.typ == tokenEOF {
			return nil, &SyntaxError{Pos: p.tok.pos, Expected: "an object after ','", Found: p.tok.describe()}
		}
	}
}

func (p *parser) parseObject() (Object, error) {
	switch p.tok.typ {
	case tokenString:
		obj := Object{Value: p.tok.value, Literal: true}
		return obj, p.next()
	case tokenPName:
		iri, err := p.resolve(p.tok)
		if err != nil {
			return Object{}, err
		}
		return Object{Value: iri}, p.next()
	case tokenIRIRef:
		obj := Object{Value: p.tok.value}
		return obj, p.next()
	default:
		return Object{}, &SyntaxError{Pos: p.tok.pos, Expected: "an object", Found: p.tok.describe()}
	}
}

// resolve expands a prefixed name to its canonical IRI. The prefix must have
// been declared earlier in this input.
func (p *parser) resolve(tok token) (string, error) {
	ns, ok := p.prefixes[tok.prefix]
	if !ok {
		return "", &UnknownPrefixError{Pos: tok.pos, Prefix: tok.prefix}
	}
	return ns + tok.value, nil
}
