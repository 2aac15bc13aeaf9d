package coffee

import (
	"fmt"
	"strings"
)

// reserved lists CoffeeScript keywords outside the supported subset. They
// fail fast at lex time instead of compiling as plain identifiers.
var reserved = map[string]bool{
	"await": true, "by": true, "catch": true, "class": true, "delete": true,
	"do": true, "export": true, "extends": true, "finally": true, "for": true,
	"import": true, "in": true, "instanceof": true, "loop": true, "new": true,
	"of": true, "super": true, "switch": true, "throw": true, "try": true,
	"typeof": true, "unless": true, "until": true, "when": true, "while": true,
	"yield": true,
}

type lexer struct {
	file    string
	src     string
	pos     int
	line    int
	col     int
	toks    []token
	indents []int
	depth   int
}

func lex(file, src string) ([]token, error) {
	l := &lexer{file: file, src: src, line: 1, col: 1, indents: []int{0}}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) run() error {
	atLineStart := true
	for l.pos < len(l.src) {
		if atLineStart && l.depth == 0 {
			skipped, err := l.lineStart()
			if err != nil {
				return err
			}
			if skipped {
				continue
			}
			atLineStart = false
			continue
		}

		line, col := l.line, l.col
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.advance(1)
			if l.depth == 0 {
				l.emitAt(tkTerminator, "\n", line, col)
				atLineStart = true
			}
		case c == ' ' || c == '\t' || c == '\r':
			l.advance(1)
		case c == '#':
			if err := l.comment(); err != nil {
				return err
			}
		case c == '\'' || c == '"':
			if err := l.scanString(); err != nil {
				return err
			}
		case isDigit(c):
			l.scanNumber()
		case isIdentStart(c):
			if err := l.scanWord(); err != nil {
				return err
			}
		default:
			if err := l.scanOperator(); err != nil {
				return err
			}
		}
	}

	if l.depth == 0 {
		if n := len(l.toks); n > 0 && l.toks[n-1].kind != tkTerminator {
			l.emitAt(tkTerminator, "\n", l.line, l.col)
		}
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.emitAt(tkOutdent, "", l.line, l.col)
		}
	}
	l.emitAt(tkEOF, "", l.line, l.col)
	return nil
}

// lineStart measures indentation and maintains the indent stack. Blank and
// comment-only lines are consumed silently. Tabs and spaces both count as
// one column.
func (l *lexer) lineStart() (skipped bool, err error) {
	indent := 0
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.advance(1)
		indent++
	}
	if l.pos >= len(l.src) {
		return true, nil
	}
	switch c := l.src[l.pos]; {
	case c == '\n' || c == '\r':
		l.skipToNextLine()
		return true, nil
	case c == '#':
		if err := l.comment(); err != nil {
			return false, err
		}
		l.skipToNextLine()
		return true, nil
	}

	top := l.indents[len(l.indents)-1]
	switch {
	case indent > top:
		l.indents = append(l.indents, indent)
		l.emitAt(tkIndent, "", l.line, 1)
	case indent < top:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > indent {
			l.indents = l.indents[:len(l.indents)-1]
			l.emitAt(tkOutdent, "", l.line, 1)
		}
		if l.indents[len(l.indents)-1] != indent {
			return false, l.errAt(l.line, 1, "inconsistent indentation")
		}
	}
	return false, nil
}

func (l *lexer) comment() error {
	line, col := l.line, l.col
	if strings.HasPrefix(l.src[l.pos:], "###") {
		end := strings.Index(l.src[l.pos+3:], "###")
		if end < 0 {
			return l.errAt(line, col, "unterminated block comment")
		}
		l.advance(3 + end + 3)
		return nil
	}
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance(1)
	}
	return nil
}

func (l *lexer) scanWord() error {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.advance(1)
	}
	word := l.src[start:l.pos]
	switch word {
	case "if":
		l.emitAt(tkIf, word, line, col)
	case "else":
		l.emitAt(tkElse, word, line, col)
	case "then":
		l.emitAt(tkThen, word, line, col)
	case "return":
		l.emitAt(tkReturn, word, line, col)
	case "true", "yes", "on":
		l.emitAt(tkBool, "true", line, col)
	case "false", "no", "off":
		l.emitAt(tkBool, "false", line, col)
	case "null":
		l.emitAt(tkNull, word, line, col)
	case "undefined":
		l.emitAt(tkUndefined, word, line, col)
	case "and":
		l.emitAt(tkOp, "&&", line, col)
	case "or":
		l.emitAt(tkOp, "||", line, col)
	case "not":
		l.emitAt(tkOp, "!", line, col)
	case "is":
		l.emitAt(tkOp, "===", line, col)
	case "isnt":
		l.emitAt(tkOp, "!==", line, col)
	default:
		if reserved[word] {
			return l.errAt(line, col, "reserved word %q is not supported", word)
		}
		l.emitAt(tkIdent, word, line, col)
	}
	return nil
}

func (l *lexer) scanNumber() {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance(1)
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.advance(1)
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance(1)
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		next := l.pos + 1
		if next < len(l.src) && (l.src[next] == '+' || l.src[next] == '-') {
			next++
		}
		if next < len(l.src) && isDigit(l.src[next]) {
			l.advance(next - l.pos)
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.advance(1)
			}
		}
	}
	l.emitAt(tkNumber, l.src[start:l.pos], line, col)
}

// scanString keeps the literal verbatim, quotes included; simple quoted
// strings are valid JavaScript as written.
func (l *lexer) scanString() error {
	line, col := l.line, l.col
	quote := l.src[l.pos]
	start := l.pos
	l.advance(1)
	for {
		if l.pos >= len(l.src) || l.src[l.pos] == '\n' {
			return l.errAt(line, col, "unterminated string")
		}
		c := l.src[l.pos]
		if c == quote {
			l.advance(1)
			break
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			l.advance(2)
			continue
		}
		l.advance(1)
	}
	l.emitAt(tkString, l.src[start:l.pos], line, col)
	return nil
}

func (l *lexer) scanOperator() error {
	line, col := l.line, l.col
	rest := l.src[l.pos:]
	// longest match first: === before ==, !== before !=
	multi := []struct{ src, emit string }{
		{"->", "->"},
		{"===", "==="}, {"!==", "!=="},
		{"==", "==="}, {"!=", "!=="},
		{"<=", "<="}, {">=", ">="},
		{"&&", "&&"}, {"||", "||"},
	}
	for _, op := range multi {
		if strings.HasPrefix(rest, op.src) {
			l.advance(len(op.src))
			if op.src == "->" {
				l.emitAt(tkArrow, op.emit, line, col)
			} else {
				l.emitAt(tkOp, op.emit, line, col)
			}
			return nil
		}
	}

	c := l.src[l.pos]
	if strings.IndexByte("=+-*/%()[]{},:.!<>", c) < 0 {
		return l.errAt(line, col, "unexpected character %q", c)
	}
	switch c {
	case '(', '[', '{':
		l.depth++
	case ')', ']', '}':
		if l.depth > 0 {
			l.depth--
		}
	}
	l.advance(1)
	l.emitAt(tkOp, string(c), line, col)
	return nil
}

func (l *lexer) skipToNextLine() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.advance(1)
		if c == '\n' {
			return
		}
	}
}

func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) emitAt(kind tokenKind, text string, line, col int) {
	l.toks = append(l.toks, token{kind: kind, text: text, line: line, col: col})
}

func (l *lexer) errAt(line, col int, format string, args ...any) error {
	return &SyntaxError{File: l.file, Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
