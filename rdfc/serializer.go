package rdfc

import "strings"

// blankLabel resolves the textual label a blank node should render as.
// hash.go supplies the §4.3.1 reference/non-reference substitution rule;
// the N-Quads encoder supplies a straight issued-label lookup.
type blankLabel func(*BlankNode) string

// renderQuad renders a quad as canonical N-Quads text: "S P O [G] .\n",
// with blank nodes substituted via label. This is the Quad Hashing
// Serializer of spec §4.2 — its output is fed directly into the configured
// digest, so it must match the canonical N-Quads form exactly.
func renderQuad(q Quad, label blankLabel) string {
	var b strings.Builder
	b.WriteString(renderTerm(q.S, label))
	b.WriteByte(' ')
	b.WriteString(renderIRI(q.P))
	b.WriteByte(' ')
	b.WriteString(renderTerm(q.O, label))
	if q.G != nil {
		b.WriteByte(' ')
		b.WriteString(renderTerm(q.G, label))
	}
	b.WriteString(" .\n")
	return b.String()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(t Term, label blankLabel) string {
	switch v := t.(type) {
	case IRI:
		return renderIRI(v)
	case *BlankNode:
		return "_:" + label(v)
	case Literal:
		return renderLiteral(v)
	default:
		return ""
	}
}

func renderLiteral(l Literal) string {
	var b strings.Builder
	b.WriteByte('"')
	escapeLexical(&b, l.Lexical)
	b.WriteByte('"')
	switch {
	case l.Lang != "":
		b.WriteByte('@')
		b.WriteString(l.Lang)
	case l.Datatype.Value != "" && l.Datatype.Value != XSDString:
		b.WriteString("^^")
		b.WriteString(renderIRI(l.Datatype))
	}
	return b.String()
}

// escapeLexical escapes backslash, double-quote, LF, and CR per the
// canonical N-Quads literal grammar.
func escapeLexical(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
}
