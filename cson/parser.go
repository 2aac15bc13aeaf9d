package cson

import (
	"fmt"
	"strconv"
)

// Parse parses a complete CSON document into a value tree. The file name is
// used only for diagnostic positions. Malformed input yields a *SyntaxError
// and no partial result.
func Parse(file string, data []byte) (Value, error) {
	toks, err := scan(file, string(data))
	if err != nil {
		return nil, err
	}

	p := &parser{file: file, toks: toks}
	p.skipNewlines()
	if p.at(tokEOF) {
		return nil, p.errorf(p.cur(), "unexpected end of input")
	}

	var value Value
	if p.atObjectBlock() {
		value, err = p.parseObjectBlock()
	} else {
		value, err = p.parseValue()
	}
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if !p.at(tokEOF) {
		return nil, p.unexpected(p.cur())
	}
	return value, nil
}

type parser struct {
	file string
	toks []token
	pos  int
}

// parseObjectBlock parses `key: value` pairs at the current indentation
// level. It stops at (and leaves unconsumed) the closing outdent.
func (p *parser) parseObjectBlock() (Value, error) {
	obj := &Object{}
	for {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if !p.atPunct(":") {
			return nil, p.errorf(p.cur(), "expected ':' after key %q", key)
		}
		p.next()

		var value Value
		if p.blockFollows() {
			value, err = p.parseBlockValue()
		} else {
			value, err = p.parseValue()
		}
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)

		switch {
		case p.at(tokNewline):
			p.skipNewlines()
		case p.at(tokOutdent) || p.at(tokEOF):
		case p.atObjectBlock():
			// a nested block consumed its own outdent, leaving the
			// next key of this level current
		default:
			return nil, p.unexpected(p.cur())
		}
		if p.at(tokOutdent) || p.at(tokEOF) {
			return obj, nil
		}
	}
}

// parseBlockValue parses a value placed on its own indented line(s) below a
// key, either a nested object block or a single indented value.
func (p *parser) parseBlockValue() (Value, error) {
	p.skipNewlines()
	p.next() // indent

	var value Value
	var err error
	if p.atObjectBlock() {
		value, err = p.parseObjectBlock()
	} else {
		value, err = p.parseValue()
		if err == nil {
			p.skipNewlines()
		}
	}
	if err != nil {
		return nil, err
	}
	if !p.at(tokOutdent) {
		return nil, p.unexpected(p.cur())
	}
	p.next()
	return value, nil
}

func (p *parser) parseValue() (Value, error) {
	t := p.next()
	switch t.kind {
	case tokString:
		return t.text, nil
	case tokNumber:
		n, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, p.errorf(t, "invalid number %q", t.text)
		}
		return n, nil
	case tokBool:
		return t.text == "true" || t.text == "yes" || t.text == "on", nil
	case tokNull:
		return nil, nil
	case tokPunct:
		switch t.text {
		case "[":
			return p.parseArray()
		case "{":
			return p.parseInlineObject()
		}
	}
	return nil, p.unexpected(t)
}

func (p *parser) parseArray() (Value, error) {
	values := []Value{}
	p.skipSeparators()
	for !p.atPunct("]") {
		if p.at(tokEOF) {
			return nil, p.errorf(p.cur(), "unexpected end of input")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		p.skipSeparators()
	}
	p.next()
	return values, nil
}

func (p *parser) parseInlineObject() (Value, error) {
	obj := &Object{}
	p.skipSeparators()
	for !p.atPunct("}") {
		if p.at(tokEOF) {
			return nil, p.errorf(p.cur(), "unexpected end of input")
		}
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if !p.atPunct(":") {
			return nil, p.errorf(p.cur(), "expected ':' after key %q", key)
		}
		p.next()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
		p.skipSeparators()
	}
	p.next()
	return obj, nil
}

func (p *parser) parseKey() (string, error) {
	t := p.next()
	switch t.kind {
	case tokIdent, tokString, tokBool, tokNull:
		return t.text, nil
	}
	return "", p.errorf(t, "expected a key, found %s", describe(t))
}

// atObjectBlock reports whether the current position starts a `key: value`
// pair, i.e. an implicit object rather than a bare value.
func (p *parser) atObjectBlock() bool {
	switch p.cur().kind {
	case tokIdent, tokString, tokBool, tokNull:
	default:
		return false
	}
	next := p.toks[p.pos+1]
	return next.kind == tokPunct && next.text == ":"
}

// blockFollows reports whether the value for the pending key is laid out on
// the following, more deeply indented line(s).
func (p *parser) blockFollows() bool {
	i := p.pos
	for i < len(p.toks) && p.toks[i].kind == tokNewline {
		i++
	}
	return i > p.pos && i < len(p.toks) && p.toks[i].kind == tokIndent
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) at(kind tokenKind) bool {
	return p.cur().kind == kind
}

func (p *parser) atPunct(text string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == text
}

func (p *parser) skipNewlines() {
	for p.at(tokNewline) {
		p.pos++
	}
}

func (p *parser) skipSeparators() {
	for p.at(tokNewline) || p.atPunct(",") {
		p.pos++
	}
}

func (p *parser) unexpected(t token) error {
	return p.errorf(t, "unexpected %s", describe(t))
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{File: p.file, Line: t.line, Col: t.col, Message: fmt.Sprintf(format, args...)}
}

func describe(t token) string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "end of line"
	case tokIndent:
		return "indent"
	case tokOutdent:
		return "outdent"
	case tokPunct:
		return fmt.Sprintf("%q", t.text)
	case tokString:
		return "string"
	case tokNumber:
		return fmt.Sprintf("number %s", t.text)
	case tokIdent:
		return fmt.Sprintf("identifier %q", t.text)
	case tokBool, tokNull:
		return fmt.Sprintf("%q", t.text)
	}
	return "token"
}
