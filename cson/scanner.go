package cson

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIndent
	tokOutdent
	tokIdent
	tokString
	tokNumber
	tokBool
	tokNull
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type scanner struct {
	file    string
	src     string
	pos     int
	line    int
	col     int
	toks    []token
	indents []int
	depth   int
}

func scan(file, src string) ([]token, error) {
	s := &scanner{file: file, src: src, line: 1, col: 1, indents: []int{0}}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.toks, nil
}

func (s *scanner) run() error {
	atLineStart := true
	for s.pos < len(s.src) {
		if atLineStart && s.depth == 0 {
			skipped, err := s.lineStart()
			if err != nil {
				return err
			}
			if skipped {
				continue
			}
			atLineStart = false
			continue
		}

		line, col := s.line, s.col
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.advance(1)
			s.emitAt(tokNewline, "\n", line, col)
			atLineStart = true
		case c == ' ' || c == '\t' || c == '\r':
			s.advance(1)
		case c == '#':
			if err := s.comment(); err != nil {
				return err
			}
		case c == '[' || c == '{':
			s.depth++
			s.advance(1)
			s.emitAt(tokPunct, string(c), line, col)
		case c == ']' || c == '}':
			if s.depth > 0 {
				s.depth--
			}
			s.advance(1)
			s.emitAt(tokPunct, string(c), line, col)
		case c == ':' || c == ',':
			s.advance(1)
			s.emitAt(tokPunct, string(c), line, col)
		case c == '\'' || c == '"':
			if err := s.scanString(); err != nil {
				return err
			}
		case isDigit(c) || (c == '-' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1])):
			s.scanNumber()
		case isIdentStart(c):
			s.scanWord()
		default:
			return s.errAt(line, col, "unexpected character %q", c)
		}
	}

	if s.depth == 0 {
		if n := len(s.toks); n > 0 && s.toks[n-1].kind != tokNewline {
			s.emitAt(tokNewline, "\n", s.line, s.col)
		}
		for len(s.indents) > 1 {
			s.indents = s.indents[:len(s.indents)-1]
			s.emitAt(tokOutdent, "", s.line, s.col)
		}
	}
	s.emitAt(tokEOF, "", s.line, s.col)
	return nil
}

// lineStart measures the indentation of a content line and maintains the
// indent stack. Blank and comment-only lines are consumed without emitting
// any token so they never act as separators.
func (s *scanner) lineStart() (skipped bool, err error) {
	indent := 0
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.advance(1)
		indent++
	}
	if s.pos >= len(s.src) {
		return true, nil
	}
	switch c := s.src[s.pos]; {
	case c == '\t':
		return false, s.errAt(s.line, s.col, "tab character in indentation")
	case c == '\n' || c == '\r':
		s.skipToNextLine()
		return true, nil
	case c == '#':
		if err := s.comment(); err != nil {
			return false, err
		}
		s.skipToNextLine()
		return true, nil
	}

	top := s.indents[len(s.indents)-1]
	switch {
	case indent > top:
		s.indents = append(s.indents, indent)
		s.emitAt(tokIndent, "", s.line, 1)
	case indent < top:
		for len(s.indents) > 1 && s.indents[len(s.indents)-1] > indent {
			s.indents = s.indents[:len(s.indents)-1]
			s.emitAt(tokOutdent, "", s.line, 1)
		}
		if s.indents[len(s.indents)-1] != indent {
			return false, s.errAt(s.line, 1, "inconsistent indentation")
		}
	}
	return false, nil
}

func (s *scanner) comment() error {
	line, col := s.line, s.col
	if strings.HasPrefix(s.src[s.pos:], "###") {
		end := strings.Index(s.src[s.pos+3:], "###")
		if end < 0 {
			return s.errAt(line, col, "unterminated block comment")
		}
		s.advance(3 + end + 3)
		return nil
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.advance(1)
	}
	return nil
}

func (s *scanner) scanNumber() {
	line, col := s.line, s.col
	start := s.pos
	if s.src[s.pos] == '-' {
		s.advance(1)
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.advance(1)
	}
	if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && isDigit(s.src[s.pos+1]) {
		s.advance(1)
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.advance(1)
		}
	}
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		next := s.pos + 1
		if next < len(s.src) && (s.src[next] == '+' || s.src[next] == '-') {
			next++
		}
		if next < len(s.src) && isDigit(s.src[next]) {
			s.advance(next - s.pos)
			for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
				s.advance(1)
			}
		}
	}
	s.emitAt(tokNumber, s.src[start:s.pos], line, col)
}

func (s *scanner) scanWord() {
	line, col := s.line, s.col
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.advance(1)
	}
	word := s.src[start:s.pos]
	switch word {
	case "true", "false", "yes", "no", "on", "off":
		s.emitAt(tokBool, word, line, col)
	case "null", "undefined":
		s.emitAt(tokNull, word, line, col)
	default:
		s.emitAt(tokIdent, word, line, col)
	}
}

func (s *scanner) scanString() error {
	line, col := s.line, s.col
	quote := s.src[s.pos]
	closer := strings.Repeat(string(quote), 3)
	if strings.HasPrefix(s.src[s.pos:], closer) {
		s.advance(3)
		end := strings.Index(s.src[s.pos:], closer)
		if end < 0 {
			return s.errAt(line, col, "unterminated string")
		}
		raw := s.src[s.pos : s.pos+end]
		s.advance(end + 3)
		s.emitAt(tokString, dedentHeredoc(raw), line, col)
		return nil
	}

	s.advance(1)
	var b strings.Builder
	for {
		if s.pos >= len(s.src) || s.src[s.pos] == '\n' {
			return s.errAt(line, col, "unterminated string")
		}
		c := s.src[s.pos]
		if c == quote {
			s.advance(1)
			break
		}
		if c == '\\' {
			if s.pos+1 >= len(s.src) {
				return s.errAt(line, col, "unterminated string")
			}
			switch e := s.src[s.pos+1]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				if s.pos+6 > len(s.src) {
					return s.errAt(s.line, s.col, "invalid unicode escape")
				}
				v, err := strconv.ParseUint(s.src[s.pos+2:s.pos+6], 16, 32)
				if err != nil {
					return s.errAt(s.line, s.col, "invalid unicode escape")
				}
				b.WriteRune(rune(v))
				s.advance(6)
				continue
			default:
				b.WriteByte(e)
			}
			s.advance(2)
			continue
		}
		b.WriteByte(c)
		s.advance(1)
	}
	s.emitAt(tokString, b.String(), line, col)
	return nil
}

// dedentHeredoc normalizes a triple-quoted string: the leading newline is
// dropped, the common indentation of the remaining lines is stripped, and
// trailing whitespace before the closing quotes is removed.
func dedentHeredoc(raw string) string {
	raw = strings.TrimPrefix(raw, "\n")
	lines := strings.Split(raw, "\n")
	indent := -1
	for _, ln := range lines {
		trimmed := strings.TrimLeft(ln, " \t")
		if trimmed == "" {
			continue
		}
		if n := len(ln) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, ln := range lines {
			if len(ln) >= indent {
				lines[i] = ln[indent:]
			} else {
				lines[i] = strings.TrimLeft(ln, " \t")
			}
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

func (s *scanner) skipToNextLine() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		s.advance(1)
		if c == '\n' {
			return
		}
	}
}

func (s *scanner) advance(n int) {
	for i := 0; i < n && s.pos < len(s.src); i++ {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
}

func (s *scanner) emitAt(kind tokenKind, text string, line, col int) {
	s.toks = append(s.toks, token{kind: kind, text: text, line: line, col: col})
}

func (s *scanner) errAt(line, col int, format string, args ...any) error {
	return &SyntaxError{File: s.file, Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
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
