package rdfc

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// DecodeNQuads parses canonical or plain N-Quads text into a Dataset and
// the blank-node label map minted along the way, keyed by blank-node
// identity (spec §6: "an N-Quads decoder that returns
// (blank_node_labels: BlankNode→string, dataset: Dataset)"). This is the
// decoder half of the "external collaborator" codec pair spec §6 describes;
// it is implemented in this module because there is no separate RDF core
// library to depend on (see SPEC_FULL.md §9.2).
func DecodeNQuads(r io.Reader) (map[*BlankNode]string, Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	byInputLabel := make(map[string]*BlankNode)
	ds := Dataset{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := parseNQuadLine(line, byInputLabel)
		if err != nil {
			return nil, Dataset{}, &ParseError{Line: lineNo, Statement: line, Err: err}
		}
		ds.Add(q)
	}
	if err := scanner.Err(); err != nil {
		return nil, Dataset{}, &ParseError{Line: lineNo, Err: err}
	}

	labels := make(map[*BlankNode]string, len(byInputLabel))
	for input, b := range byInputLabel {
		labels[b] = input
	}
	return labels, ds, nil
}

func parseNQuadLine(line string, labels map[string]*BlankNode) (Quad, error) {
	c := &nqCursor{input: line, labels: labels}
	s, err := c.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	p, err := c.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	o, err := c.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}
	g, err := c.parseOptionalGraph()
	if err != nil {
		return Quad{}, err
	}
	c.skipWS()
	if !c.consume('.') {
		return Quad{}, fmt.Errorf("expected '.' at end of statement")
	}
	return Quad{S: s, P: p, O: o, G: g}, nil
}

type nqCursor struct {
	input  string
	pos    int
	labels map[string]*BlankNode
}

func (c *nqCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *nqCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *nqCursor) parseOptionalGraph() (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) || c.input[c.pos] == '.' {
		return nil, nil
	}
	return c.parseTerm(false)
}

func (c *nqCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, fmt.Errorf("unexpected end of line")
	}
	switch {
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, fmt.Errorf("literal not allowed in this position")
		}
		return c.parseLiteral()
	default:
		return nil, fmt.Errorf("unexpected token at offset %d", c.pos)
	}
}

func (c *nqCursor) parseIRI() (IRI, error) {
	c.skipWS()
	if !c.consume('<') {
		return IRI{}, fmt.Errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, fmt.Errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	return IRI{Value: value}, nil
}

func (c *nqCursor) parseBlankNode() (*BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isDelimiter(c.input[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return nil, fmt.Errorf("blank node id missing")
	}
	label := c.input[start:c.pos]
	if b, ok := c.labels[label]; ok {
		return b, nil
	}
	b := &BlankNode{Input: label}
	c.labels[label] = b
	return b, nil
}

func (c *nqCursor) parseLiteral() (Literal, error) {
	c.pos++ // opening quote
	var lex strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			break
		}
		if ch == '\\' && c.pos+1 < len(c.input) {
			switch c.input[c.pos+1] {
			case 'n':
				lex.WriteByte('\n')
			case 't':
				lex.WriteByte('\t')
			case 'r':
				lex.WriteByte('\r')
			case '"':
				lex.WriteByte('"')
			case '\\':
				lex.WriteByte('\\')
			default:
				lex.WriteByte(c.input[c.pos+1])
			}
			c.pos += 2
			continue
		}
		lex.WriteByte(ch)
		c.pos++
	}
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isDelimiter(c.input[c.pos]) {
			c.pos++
		}
		return Literal{Lexical: lex.String(), Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lex.String(), Datatype: dt}, nil
	}
	return Literal{Lexical: lex.String()}, nil
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '.':
		return true
	default:
		return false
	}
}

// EncodeOptions configures EncodeNQuads.
type EncodeOptions struct {
	// Canonical, when true, sorts rendered lines in ascending byte order
	// per RDF 1.1 Canonical N-Quads (spec §6).
	Canonical bool
	// Labels supplies the blank-node label to render for each node.
	// GenerateMissing controls what happens for a node absent from Labels.
	Labels map[*BlankNode]string
	// GenerateMissing, when true, mints a fresh "bN" label for any blank
	// node absent from Labels. When false, such a node is rendered with its
	// own Input label; no fresh label is minted and no error is returned.
	// The canonical facade always sets this false (spec §4.5: "disabling
	// automatic generation of fresh blank-node labels").
	GenerateMissing bool
}

// EncodeNQuads writes a dataset as N-Quads to w using the given options.
func EncodeNQuads(w io.Writer, ds Dataset, opts EncodeOptions) error {
	quads := ds.Quads()
	fresh := 0
	generated := make(map[*BlankNode]string)
	label := func(b *BlankNode) string {
		if l, ok := opts.Labels[b]; ok {
			return l
		}
		if l, ok := generated[b]; ok {
			return l
		}
		if !opts.GenerateMissing {
			return b.Input
		}
		l := "b" + strconv.Itoa(fresh)
		fresh++
		generated[b] = l
		return l
	}

	lines := make([]string, 0, len(quads))
	for _, q := range quads {
		lines = append(lines, renderQuad(q, label))
	}
	if opts.Canonical {
		sort.Strings(lines)
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
