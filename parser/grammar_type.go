package parser

import "github.com/sqldef/pgparse/syntaxkind"

// parseType parses a type_name production: a plain or schema-qualified
// name (most built-in and all user-defined types), one of the handful of
// multi-word SQL-standard forms PostgreSQL gives dedicated keyword syntax
// (CHARACTER VARYING, DOUBLE PRECISION, TIME/TIMESTAMP [WITH|WITHOUT TIME
// ZONE], BIT VARYING, INTERVAL [fields]), an optional (precision[,scale])
// or (length), and any number of trailing ARRAY or `[n]` suffixes, plus a
// %TYPE/%ROWTYPE suffix.
func (p *Parser) parseType() CompletedMarker {
	m := p.start()

	switch p.current() {
	case syntaxkind.CHARACTER_KW, syntaxkind.CHAR_KW, syntaxkind.NCHAR_KW, syntaxkind.NATIONAL_KW, syntaxkind.VARCHAR_KW:
		p.charType()
		return p.typeArraySuffix(m, syntaxkind.CHAR_TYPE)

	case syntaxkind.BIT_KW:
		p.bumpAny()
		p.eat(syntaxkind.VARYING_KW)
		p.typeModifiers()
		return p.typeArraySuffix(m, syntaxkind.BIT_TYPE)

	case syntaxkind.DOUBLE_KW:
		p.bumpAny()
		p.expect(syntaxkind.PRECISION_KW)
		return p.typeArraySuffix(m, syntaxkind.DOUBLE_TYPE)

	case syntaxkind.TIME_KW, syntaxkind.TIMESTAMP_KW:
		p.bumpAny()
		p.typeModifiers()
		p.timeZoneSuffix()
		return p.typeArraySuffix(m, syntaxkind.TIME_TYPE)

	case syntaxkind.INTERVAL_KW:
		p.bumpAny()
		if syntaxkind.IsKeyword(p.current()) && intervalFieldKeywords.Contains(p.current()) {
			p.bumpAny()
			if p.eat(syntaxkind.TO_KW) {
				p.bumpAny()
			}
		}
		p.typeModifiers()
		return p.typeArraySuffix(m, syntaxkind.INTERVAL_TYPE)

	default:
		p.path()
		p.typeModifiers()
		return p.typeArraySuffix(m, syntaxkind.PATH_TYPE)
	}
}

var intervalFieldKeywords = syntaxkind.NewTokenSet(syntaxkind.YEAR_KW, syntaxkind.MONTH_KW, syntaxkind.DAY_KW,
	syntaxkind.HOUR_KW, syntaxkind.MINUTE_KW, syntaxkind.SECOND_KW)

func (p *Parser) charType() {
	p.eat(syntaxkind.NATIONAL_KW)
	switch p.current() {
	case syntaxkind.CHARACTER_KW, syntaxkind.CHAR_KW, syntaxkind.NCHAR_KW:
		p.bumpAny()
		p.eat(syntaxkind.VARYING_KW)
	case syntaxkind.VARCHAR_KW:
		p.bumpAny()
	}
	p.typeModifiers()
}

func (p *Parser) timeZoneSuffix() {
	switch {
	case p.at(syntaxkind.WITH_KW) && p.nthAt(1, syntaxkind.TIME_KW):
		m := p.start()
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.ZONE_KW)
		m.Complete(p, syntaxkind.WITH_TIMEZONE)
	case p.at(syntaxkind.WITHOUT_KW) && p.nthAt(1, syntaxkind.TIME_KW):
		m := p.start()
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.ZONE_KW)
		m.Complete(p, syntaxkind.WITHOUT_TIMEZONE)
	}
}

// typeModifiers parses an optional `(n[, m])` precision/scale/length
// suffix shared by most of the built-in parameterized types.
func (p *Parser) typeModifiers() {
	if !p.at(syntaxkind.L_PAREN) {
		return
	}
	p.bumpAny()
	p.commaListUntil(rParenSet, func() { p.exprBP(1, Restrictions{}) })
	p.expect(syntaxkind.R_PAREN)
}

// typeArraySuffix wraps the type just parsed as kind, then folds in any
// trailing ARRAY[n]/[n] repetitions and a %TYPE/%ROWTYPE reference suffix.
func (p *Parser) typeArraySuffix(m Marker, kind syntaxkind.Kind) CompletedMarker {
	cm := m.Complete(p, kind)
	for {
		switch {
		case p.at(syntaxkind.ARRAY_KW):
			am := cm.Precede(p)
			p.bumpAny()
			if p.at(syntaxkind.L_BRACK) {
				p.bumpAny()
				if !p.at(syntaxkind.R_BRACK) {
					p.exprBP(1, Restrictions{})
				}
				p.expect(syntaxkind.R_BRACK)
			}
			cm = am.Complete(p, syntaxkind.ARRAY_TYPE)
		case p.at(syntaxkind.L_BRACK):
			am := cm.Precede(p)
			p.bumpAny()
			if !p.at(syntaxkind.R_BRACK) {
				p.exprBP(1, Restrictions{})
			}
			p.expect(syntaxkind.R_BRACK)
			cm = am.Complete(p, syntaxkind.ARRAY_TYPE)
		case p.at(syntaxkind.PERCENT):
			pm := cm.Precede(p)
			p.bumpAny()
			if p.at(syntaxkind.IDENT) && (p.nthText(0) == "ROWTYPE" || p.nthText(0) == "rowtype") {
				p.bumpAny()
			} else {
				p.expect(syntaxkind.TYPE_KW)
			}
			cm = pm.Complete(p, syntaxkind.PERCENT_TYPE)
		default:
			return cm
		}
	}
}
