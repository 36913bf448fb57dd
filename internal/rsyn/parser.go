package rsyn

import "fmt"

// ParseFile parses a declaration file. It recognizes struct, enum, and union
// items with attributes, visibility, generics, and where clauses. `use` and
// `mod` lines are tolerated and skipped. Anything else is a parse error.
func ParseFile(name string, src []byte) (*File, error) {
	toks, err := lexAll(src)
	if err != nil {
		return nil, fmt.Errorf("%s:%s", name, err)
	}

	p := &parser{file: &File{Name: name, src: src}, toks: toks}
	for !p.atEOF() {
		if p.cur().IsIdent("use") || p.cur().IsIdent("mod") || p.cur().IsIdent("extern") {
			p.skipStatement()
			continue
		}
		if p.cur().Is(";") {
			p.bump()
			continue
		}
		if p.cur().Is("#") && p.toks[p.i+1].Is("!") {
			// Inner attribute (#![...]); applies to the file, not an item.
			if err := p.skipInnerAttr(); err != nil {
				return nil, err
			}
			continue
		}

		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		p.file.Items = append(p.file.Items, item)
	}
	return p.file, nil
}

type parser struct {
	file *File
	toks []Token
	i    int
}

func (p *parser) cur() Token  { return p.toks[p.i] }
func (p *parser) atEOF() bool { return p.cur().Kind == EOF }

func (p *parser) bump() Token {
	tok := p.toks[p.i]
	if tok.Kind != EOF {
		p.i++
	}
	return tok
}

func (p *parser) errorf(pos Pos, format string, args ...any) error {
	return fmt.Errorf("%s:%s: %s", p.file.Name, pos, fmt.Sprintf(format, args...))
}

func (p *parser) expectPunct(punct string) (Token, error) {
	if !p.cur().Is(punct) {
		return Token{}, p.errorf(p.cur().Pos, "expected %q, found %q", punct, p.cur().Text)
	}
	return p.bump(), nil
}

func (p *parser) expectIdent() (Token, error) {
	if p.cur().Kind != Ident || IsKeyword(p.cur().Text) {
		return Token{}, p.errorf(p.cur().Pos, "expected identifier, found %q", p.cur().Text)
	}
	return p.bump(), nil
}

func (p *parser) spanFrom(start int, pos Pos) span {
	return span{file: p.file, from: start, to: p.prevEnd(), pos: pos}
}

func (p *parser) prevEnd() int {
	if p.i == 0 {
		return 0
	}
	return p.toks[p.i-1].End
}

// skipInnerAttr drops a #![...] group.
func (p *parser) skipInnerAttr() error {
	pos := p.cur().Pos
	p.bump() // #
	p.bump() // !
	if _, err := p.expectPunct("["); err != nil {
		return err
	}
	depth := 0
	for {
		if p.atEOF() {
			return p.errorf(pos, "unterminated attribute")
		}
		tok := p.bump()
		switch {
		case tok.Is("[") || tok.Is("(") || tok.Is("{"):
			depth++
		case tok.Is("]"):
			if depth == 0 {
				return nil
			}
			depth--
		case tok.Is(")") || tok.Is("}"):
			depth--
		}
	}
}

// skipStatement drops tokens up to and including the next top-level ";".
func (p *parser) skipStatement() {
	depth := 0
	for !p.atEOF() {
		tok := p.bump()
		switch {
		case tok.Is("{") || tok.Is("(") || tok.Is("["):
			depth++
		case tok.Is("}") || tok.Is(")") || tok.Is("]"):
			depth--
		case tok.Is(";") && depth == 0:
			return
		}
	}
}

func (p *parser) parseItem() (*Item, error) {
	start := p.cur().Off
	pos := p.cur().Pos

	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	p.parseVisibility()

	var kind ItemKind
	switch {
	case p.cur().IsIdent("struct"):
		kind = StructItem
	case p.cur().IsIdent("enum"):
		kind = EnumItem
	case p.cur().IsIdent("union"):
		kind = UnionItem
	default:
		return nil, p.errorf(p.cur().Pos, "expected struct, enum, or union, found %q", p.cur().Text)
	}
	p.bump()

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	item := &Item{Attrs: attrs, Kind: kind, Name: name}

	if p.cur().Is("<") {
		if item.Generics, err = p.parseGenerics(); err != nil {
			return nil, err
		}
	}

	switch kind {
	case EnumItem:
		err = p.parseEnumBody(item)
	default:
		err = p.parseStructBody(item)
	}
	if err != nil {
		return nil, err
	}

	item.span = p.spanFrom(start, pos)
	return item, nil
}

// parseAttrs parses leading #[...] groups. Only derive attributes get
// structure; the rest are retained verbatim.
func (p *parser) parseAttrs() ([]*Attr, error) {
	var attrs []*Attr
	for p.cur().Is("#") {
		start := p.cur().Off
		pos := p.cur().Pos
		p.bump()
		if _, err := p.expectPunct("["); err != nil {
			return nil, err
		}

		var derives []string
		if p.cur().IsIdent("derive") {
			p.bump()
			if _, err := p.expectPunct("("); err != nil {
				return nil, err
			}
			for !p.cur().Is(")") {
				if p.atEOF() {
					return nil, p.errorf(pos, "unterminated derive attribute")
				}
				if p.cur().Kind == Ident {
					derives = append(derives, p.cur().Text)
				}
				p.bump()
			}
			p.bump() // )
		} else {
			// Skip to the matching "]".
			depth := 0
			for {
				if p.atEOF() {
					return nil, p.errorf(pos, "unterminated attribute")
				}
				if p.cur().Is("[") || p.cur().Is("(") || p.cur().Is("{") {
					depth++
				} else if p.cur().Is("]") || p.cur().Is(")") || p.cur().Is("}") {
					if depth == 0 {
						break
					}
					depth--
				}
				p.bump()
			}
		}
		if _, err := p.expectPunct("]"); err != nil {
			return nil, err
		}
		attrs = append(attrs, &Attr{span: p.spanFrom(start, pos), Derives: derives})
	}
	return attrs, nil
}

// parseVisibility consumes pub, pub(crate), pub(super), pub(in path).
func (p *parser) parseVisibility() {
	if !p.cur().IsIdent("pub") {
		return
	}
	p.bump()
	if p.cur().Is("(") {
		depth := 0
		for !p.atEOF() {
			tok := p.bump()
			if tok.Is("(") {
				depth++
			} else if tok.Is(")") {
				depth--
				if depth == 0 {
					return
				}
			}
		}
	}
}

func (p *parser) parseGenerics() (*Generics, error) {
	start := p.cur().Off
	pos := p.cur().Pos
	p.bump() // <

	g := &Generics{}
	for !p.cur().Is(">") {
		if p.atEOF() {
			return nil, p.errorf(pos, "unterminated generic parameter list")
		}

		param, err := p.parseGenericParam()
		if err != nil {
			return nil, err
		}
		g.Params = append(g.Params, param)

		if p.cur().Is(",") {
			p.bump()
		} else if !p.cur().Is(">") {
			return nil, p.errorf(p.cur().Pos, "expected \",\" or \">\" in generic parameter list, found %q", p.cur().Text)
		}
	}
	p.bump() // >
	g.span = p.spanFrom(start, pos)
	return g, nil
}

func (p *parser) parseGenericParam() (GenericParam, error) {
	start := p.cur().Off
	pos := p.cur().Pos

	// Attributes on generic params are legal but carry no meaning here.
	if _, err := p.parseAttrs(); err != nil {
		return nil, err
	}

	switch {
	case p.cur().Kind == Lifetime:
		name := p.bump()
		if p.cur().Is(":") {
			// Lifetime bounds ('a: 'b) do not survive into any projection.
			p.bump()
			if _, err := p.parseBounds(",", ">"); err != nil {
				return nil, err
			}
		}
		return &LifetimeParam{span: p.spanFrom(start, pos), Name: name}, nil

	case p.cur().IsIdent("const"):
		p.bump()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(":"); err != nil {
			return nil, err
		}
		typ, err := p.parseTypeExpr(",", ">", "=")
		if err != nil {
			return nil, err
		}
		if p.cur().Is("=") {
			p.bump()
			if _, err := p.parseTypeExpr(",", ">"); err != nil {
				return nil, err
			}
		}
		return &ConstParam{span: p.spanFrom(start, pos), Name: name, Type: typ}, nil

	default:
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		param := &TypeParam{Name: name}
		if p.cur().Is(":") {
			p.bump()
			if param.Bounds, err = p.parseBounds(",", ">", "="); err != nil {
				return nil, err
			}
		}
		if p.cur().Is("=") {
			p.bump()
			if param.Default, err = p.parseTypeExpr(",", ">"); err != nil {
				return nil, err
			}
		}
		param.span = p.spanFrom(start, pos)
		return param, nil
	}
}

// parseBounds parses a "+"-separated bound list, stopping at any of the
// terminator puncts at bracket depth zero.
func (p *parser) parseBounds(terms ...string) ([]*Bound, error) {
	var bounds []*Bound
	for {
		start := p.cur().Off
		pos := p.cur().Pos
		n, err := p.scanBalanced(append([]string{"+"}, terms...))
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, p.errorf(pos, "expected bound, found %q", p.cur().Text)
		}

		bound := &Bound{span: p.spanFrom(start, pos)}
		if n == 1 && p.toks[p.i-1].Kind == Lifetime {
			bound.Lifetime = true
			bound.Static = p.toks[p.i-1].Text == "'static"
		}
		bounds = append(bounds, bound)

		if p.cur().Is("+") {
			p.bump()
			continue
		}
		return bounds, nil
	}
}

// parseType parses a field type: a structural reference, or an opaque span.
func (p *parser) parseType(terms ...string) (Type, error) {
	if !p.cur().Is("&") {
		return p.parseTypeExpr(terms...)
	}

	start := p.cur().Off
	pos := p.cur().Pos
	p.bump() // &

	ref := &RefType{}
	if p.cur().Kind == Lifetime {
		lt := p.bump()
		ref.Lifetime = &lt
	}
	if p.cur().IsIdent("mut") {
		p.bump()
		ref.Mut = true
	}

	elem, err := p.parseType(terms...)
	if err != nil {
		return nil, err
	}
	ref.Elem = elem
	ref.span = p.spanFrom(start, pos)
	return ref, nil
}

// parseTypeExpr consumes a balanced token span as an opaque type expression.
func (p *parser) parseTypeExpr(terms ...string) (*TypeExpr, error) {
	start := p.cur().Off
	pos := p.cur().Pos
	n, err := p.scanBalanced(terms)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, p.errorf(pos, "expected type, found %q", p.cur().Text)
	}

	typ := &TypeExpr{span: p.spanFrom(start, pos)}
	if n == 1 && p.toks[p.i-1].Kind == Ident && !IsKeyword(p.toks[p.i-1].Text) {
		typ.SingleIdent = p.toks[p.i-1].Text
	}
	return typ, nil
}

// scanBalanced advances over tokens until one of the terminator puncts
// appears at bracket depth zero, and returns how many tokens were consumed.
// Angle brackets nest like ordinary brackets since scanning happens only in
// type position.
func (p *parser) scanBalanced(terms []string) (int, error) {
	pos := p.cur().Pos
	depth := 0
	n := 0
	for {
		tok := p.cur()
		if tok.Kind == EOF {
			if depth > 0 {
				return 0, p.errorf(pos, "unbalanced brackets in type")
			}
			return n, nil
		}
		if depth == 0 {
			for _, term := range terms {
				if tok.Is(term) {
					return n, nil
				}
			}
			// A bare ";" or "{" always ends a type in declaration position.
			if tok.Is(";") || tok.Is("{") || tok.Is("}") {
				return n, nil
			}
		}
		switch {
		case tok.Is("(") || tok.Is("[") || tok.Is("<"):
			depth++
		case tok.Is(")") || tok.Is("]") || tok.Is(">"):
			if depth == 0 {
				return n, nil
			}
			depth--
		}
		p.bump()
		n++
	}
}

func (p *parser) parseWhere(item *Item) error {
	if !p.cur().IsIdent("where") {
		return nil
	}
	p.bump()

	for {
		if p.cur().Is("{") || p.cur().Is("(") || p.cur().Is(";") || p.atEOF() {
			return nil
		}

		start := p.cur().Off
		pos := p.cur().Pos

		// Higher-ranked binders (for<'a>) are consumed but not modelled.
		if p.cur().IsIdent("for") {
			p.bump()
			if _, err := p.expectPunct("<"); err != nil {
				return err
			}
			for !p.cur().Is(">") && !p.atEOF() {
				p.bump()
			}
			p.bump()
		}

		subject, err := p.parseType(":")
		if err != nil {
			return err
		}
		if _, err := p.expectPunct(":"); err != nil {
			return err
		}
		bounds, err := p.parseBounds(",")
		if err != nil {
			return err
		}
		item.Where = append(item.Where, &Predicate{
			span:    p.spanFrom(start, pos),
			Subject: subject,
			Bounds:  bounds,
		})

		if p.cur().Is(",") {
			p.bump()
			continue
		}
		return nil
	}
}

// parseStructBody parses named, tuple, unit, and union bodies. A where
// clause may come before a named body or after a tuple body.
func (p *parser) parseStructBody(item *Item) error {
	if err := p.parseWhere(item); err != nil {
		return err
	}

	switch {
	case p.cur().Is("{"):
		fields, err := p.parseNamedFields()
		if err != nil {
			return err
		}
		item.Fields = fields
		return nil

	case p.cur().Is("("):
		fields, err := p.parseUnnamedFields()
		if err != nil {
			return err
		}
		item.Fields = fields
		if err := p.parseWhere(item); err != nil {
			return err
		}
		_, err = p.expectPunct(";")
		return err

	case p.cur().Is(";"):
		pos := p.cur().Pos
		p.bump()
		item.Fields = &Fields{span: span{file: p.file, pos: pos}, Kind: UnitFields}
		return nil

	default:
		return p.errorf(p.cur().Pos, "expected struct body, found %q", p.cur().Text)
	}
}

func (p *parser) parseNamedFields() (*Fields, error) {
	start := p.cur().Off
	pos := p.cur().Pos
	p.bump() // {

	fields := &Fields{Kind: NamedFields}
	for !p.cur().Is("}") {
		if p.atEOF() {
			return nil, p.errorf(pos, "unterminated field list")
		}

		fstart := p.cur().Off
		fpos := p.cur().Pos
		if _, err := p.parseAttrs(); err != nil {
			return nil, err
		}
		p.parseVisibility()

		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(":"); err != nil {
			return nil, err
		}
		typ, err := p.parseType(",")
		if err != nil {
			return nil, err
		}
		fields.List = append(fields.List, &Field{
			span: p.spanFrom(fstart, fpos),
			Name: &name,
			Type: typ,
		})

		if p.cur().Is(",") {
			p.bump()
		}
	}
	p.bump() // }
	fields.span = p.spanFrom(start, pos)
	return fields, nil
}

func (p *parser) parseUnnamedFields() (*Fields, error) {
	start := p.cur().Off
	pos := p.cur().Pos
	p.bump() // (

	fields := &Fields{Kind: UnnamedFields}
	for !p.cur().Is(")") {
		if p.atEOF() {
			return nil, p.errorf(pos, "unterminated field list")
		}

		fstart := p.cur().Off
		fpos := p.cur().Pos
		if _, err := p.parseAttrs(); err != nil {
			return nil, err
		}
		p.parseVisibility()

		typ, err := p.parseType(",")
		if err != nil {
			return nil, err
		}
		fields.List = append(fields.List, &Field{
			span:  p.spanFrom(fstart, fpos),
			Index: len(fields.List),
			Type:  typ,
		})

		if p.cur().Is(",") {
			p.bump()
		}
	}
	p.bump() // )
	fields.span = p.spanFrom(start, pos)
	return fields, nil
}

func (p *parser) parseEnumBody(item *Item) error {
	if err := p.parseWhere(item); err != nil {
		return err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return err
	}

	for !p.cur().Is("}") {
		if p.atEOF() {
			return p.errorf(item.Name.Pos, "unterminated enum body")
		}

		vstart := p.cur().Off
		vpos := p.cur().Pos
		attrs, err := p.parseAttrs()
		if err != nil {
			return err
		}

		name, err := p.expectIdent()
		if err != nil {
			return err
		}

		variant := &Variant{Attrs: attrs, Name: name}
		switch {
		case p.cur().Is("{"):
			if variant.Fields, err = p.parseNamedFields(); err != nil {
				return err
			}
		case p.cur().Is("("):
			if variant.Fields, err = p.parseUnnamedFields(); err != nil {
				return err
			}
		default:
			variant.Fields = &Fields{span: span{file: p.file, pos: vpos}, Kind: UnitFields}
		}

		// Explicit discriminants (= expr) are consumed but not modelled.
		if p.cur().Is("=") {
			p.bump()
			if _, err := p.scanBalanced([]string{","}); err != nil {
				return err
			}
		}

		variant.span = p.spanFrom(vstart, vpos)
		item.Variants = append(item.Variants, variant)

		if p.cur().Is(",") {
			p.bump()
		}
	}
	p.bump() // }
	return nil
}
