package coffee

import "fmt"

var binaryPrec = map[string]int{
	"||": 1, "&&": 2,
	"===": 3, "!==": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

type parser struct {
	file string
	toks []token
	pos  int
}

func parse(file string, toks []token) (*Program, error) {
	p := &parser{file: file, toks: toks}
	prog := &Program{}
	p.skipTerminators()
	for !p.at(tkEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
		p.skipTerminators()
	}
	return prog, nil
}

func (p *parser) parseStatement() (Stmt, error) {
	var stmt Stmt
	switch p.cur().kind {
	case tkReturn:
		p.next()
		ret := &ReturnStmt{}
		if !p.atStmtEnd() && !p.at(tkIf) {
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			ret.X = x
		}
		stmt = ret
	case tkIf:
		return p.parseIf()
	default:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt = &ExprStmt{X: x}
	}

	// postfix conditional: `expr if cond`
	if p.at(tkIf) {
		p.next()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &IfStmt{Cond: cond, Then: &Block{Body: []Stmt{stmt}}}, nil
	}
	return stmt, nil
}

func (p *parser) parseIf() (Stmt, error) {
	p.next() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond}

	switch {
	case p.at(tkThen):
		p.next()
		inner, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Then = &Block{Body: []Stmt{inner}}
	case p.blockFollows():
		blk, err := p.parseIndentedBlock()
		if err != nil {
			return nil, err
		}
		stmt.Then = blk
	default:
		return nil, p.unexpected(p.cur())
	}

	if p.at(tkElse) {
		p.next()
		switch {
		case p.at(tkIf):
			inner, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmt.Else = &Block{Body: []Stmt{inner}}
		case p.blockFollows():
			blk, err := p.parseIndentedBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = blk
		default:
			inner, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmt.Else = &Block{Body: []Stmt{inner}}
		}
	}
	return stmt, nil
}

func (p *parser) parseIndentedBlock() (*Block, error) {
	p.skipTerminators()
	if !p.at(tkIndent) {
		return nil, p.unexpected(p.cur())
	}
	p.next()
	blk := &Block{}
	p.skipTerminators()
	for !p.at(tkOutdent) && !p.at(tkEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		blk.Body = append(blk.Body, stmt)
		p.skipTerminators()
	}
	if p.at(tkOutdent) {
		p.next()
	}
	return blk, nil
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if p.atOp("=") {
		switch left.(type) {
		case *Ident, *MemberExpr:
		default:
			return nil, p.errorf(p.cur(), "invalid assignment target")
		}
		p.next()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Target: left, Value: right}, nil
	}
	return left, nil
}

func (p *parser) parseBinary(min int) (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t.kind != tkOp {
			break
		}
		prec, ok := binaryPrec[t.text]
		if !ok || prec < min {
			break
		}
		p.next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: t.text, L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.atOp("!") || p.atOp("-") {
		t := p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: t.text, X: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atOp("."):
			p.next()
			t := p.cur()
			if t.kind != tkIdent {
				return nil, p.errorf(t, "expected property name, found %s", describe(t))
			}
			p.next()
			x = &MemberExpr{X: x, Name: t.text}
		case p.atOp("("):
			p.next()
			var args []Expr
			for !p.atOp(")") {
				if p.at(tkEOF) {
					return nil, p.errorf(p.cur(), "unexpected end of input")
				}
				a, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.atOp(",") {
					p.next()
					continue
				}
				if !p.atOp(")") {
					return nil, p.unexpected(p.cur())
				}
			}
			p.next()
			x = &CallExpr{Fn: x, Args: args}
		default:
			return x, nil
		}
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.cur()
	switch t.kind {
	case tkNumber:
		p.next()
		return &NumberLit{Text: t.text}, nil
	case tkString:
		p.next()
		return &StringLit{Text: t.text}, nil
	case tkBool:
		p.next()
		return &BoolLit{Value: t.text == "true"}, nil
	case tkNull:
		p.next()
		return &NullLit{}, nil
	case tkUndefined:
		p.next()
		return &UndefinedLit{}, nil
	case tkIdent:
		p.next()
		return &Ident{Name: t.text}, nil
	case tkArrow:
		p.next()
		return p.parseFuncBody(nil)
	case tkOp:
		switch t.text {
		case "(":
			if p.funcFollows() {
				return p.parseFunc()
			}
			p.next()
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if !p.atOp(")") {
				return nil, p.unexpected(p.cur())
			}
			p.next()
			return x, nil
		case "[":
			p.next()
			return p.parseArrayLit()
		case "{":
			p.next()
			return p.parseObjectLit()
		}
	case tkTerminator:
		return nil, p.errorf(t, "unexpected end of line")
	case tkEOF:
		return nil, p.errorf(t, "unexpected end of input")
	}
	return nil, p.unexpected(t)
}

// funcFollows reports whether the '(' at the current position opens a
// parameter list, i.e. its matching ')' is immediately followed by '->'.
func (p *parser) funcFollows() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.kind == tkEOF {
			break
		}
		if t.kind != tkOp {
			continue
		}
		switch t.text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].kind == tkArrow
			}
		}
	}
	return false
}

func (p *parser) parseFunc() (Expr, error) {
	p.next() // (
	var params []string
	for !p.atOp(")") {
		t := p.cur()
		if t.kind != tkIdent {
			return nil, p.errorf(t, "expected parameter name, found %s", describe(t))
		}
		p.next()
		params = append(params, t.text)
		if p.atOp(",") {
			p.next()
		}
	}
	p.next() // )
	if !p.at(tkArrow) {
		return nil, p.unexpected(p.cur())
	}
	p.next()
	return p.parseFuncBody(params)
}

func (p *parser) parseFuncBody(params []string) (Expr, error) {
	fn := &FuncLit{Params: params, Body: &Block{}}
	switch {
	case p.blockFollows():
		blk, err := p.parseIndentedBlock()
		if err != nil {
			return nil, err
		}
		fn.Body = blk
	case p.atStmtEnd():
		// -> with nothing after it compiles to an empty function
	default:
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		fn.Body = &Block{Body: []Stmt{stmt}}
	}
	return fn, nil
}

func (p *parser) parseArrayLit() (Expr, error) {
	var elems []Expr
	for !p.atOp("]") {
		if p.at(tkEOF) {
			return nil, p.errorf(p.cur(), "unexpected end of input")
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.atOp(",") {
			p.next()
			continue
		}
		if !p.atOp("]") {
			return nil, p.unexpected(p.cur())
		}
	}
	p.next()
	return &ArrayLit{Elems: elems}, nil
}

func (p *parser) parseObjectLit() (Expr, error) {
	var props []Prop
	for !p.atOp("}") {
		if p.at(tkEOF) {
			return nil, p.errorf(p.cur(), "unexpected end of input")
		}
		t := p.cur()
		var key string
		switch t.kind {
		case tkIdent, tkString:
			key = t.text
		default:
			return nil, p.errorf(t, "expected a key, found %s", describe(t))
		}
		p.next()
		if !p.atOp(":") {
			return nil, p.errorf(p.cur(), "expected ':' after key %q", key)
		}
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		props = append(props, Prop{Key: key, Value: v})
		if p.atOp(",") {
			p.next()
			continue
		}
		if !p.atOp("}") {
			return nil, p.unexpected(p.cur())
		}
	}
	p.next()
	return &ObjectLit{Props: props}, nil
}

func (p *parser) atStmtEnd() bool {
	switch p.cur().kind {
	case tkTerminator, tkOutdent, tkEOF:
		return true
	}
	return false
}

func (p *parser) blockFollows() bool {
	i := p.pos
	for i < len(p.toks) && p.toks[i].kind == tkTerminator {
		i++
	}
	return i > p.pos && i < len(p.toks) && p.toks[i].kind == tkIndent
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tkEOF {
		p.pos++
	}
	return t
}

func (p *parser) at(kind tokenKind) bool {
	return p.cur().kind == kind
}

func (p *parser) atOp(text string) bool {
	t := p.cur()
	return t.kind == tkOp && t.text == text
}

func (p *parser) skipTerminators() {
	for p.at(tkTerminator) {
		p.pos++
	}
}

func (p *parser) unexpected(t token) error {
	return p.errorf(t, "unexpected %s", describe(t))
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{File: p.file, Line: t.line, Col: t.col, Message: fmt.Sprintf(format, args...)}
}
