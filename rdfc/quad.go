package rdfc

// Quad is an RDF quad: a triple plus an optional graph name. G is nil for
// the default graph.
type Quad struct {
	// S is the subject. Never a Literal.
	S Term
	// P is the predicate. Always an IRI.
	P IRI
	// O is the object. Any Term.
	O Term
	// G is the graph name, or nil for the default graph. Never a Literal.
	G Term
}

// Dataset is an unordered, deduplicated collection of quads.
type Dataset struct {
	quads []Quad
}

// NewDataset builds a Dataset from quads, collapsing duplicates per RDF set
// semantics. Duplicate detection compares quads structurally: same term
// kinds and values in S/P/O/G, with blank nodes compared by pointer
// identity (so two quads only collapse if they share the very same
// *BlankNode instances).
func NewDataset(quads ...Quad) Dataset {
	d := Dataset{}
	for _, q := range quads {
		d.Add(q)
	}
	return d
}

// Add inserts a quad, ignoring it if an identical quad is already present.
func (d *Dataset) Add(q Quad) {
	for _, existing := range d.quads {
		if quadEqual(existing, q) {
			return
		}
	}
	d.quads = append(d.quads, q)
}

// Quads returns the dataset's quads in insertion order (post-dedup).
func (d Dataset) Quads() []Quad {
	return d.quads
}

// Len returns the number of distinct quads.
func (d Dataset) Len() int {
	return len(d.quads)
}

func quadEqual(a, b Quad) bool {
	return termEqual(a.S, b.S) && a.P.Value == b.P.Value && termEqual(a.O, b.O) && termEqual(a.G, b.G)
}

func termEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case IRI:
		bv := b.(IRI)
		return av.Value == bv.Value
	case Literal:
		bv := b.(Literal)
		return av.Lexical == bv.Lexical && av.Lang == bv.Lang && av.Datatype.Value == bv.Datatype.Value
	case *BlankNode:
		bv := b.(*BlankNode)
		return av == bv
	default:
		return false
	}
}

// blankNodesIn returns the blank nodes appearing in a quad's subject,
// object, and graph-name positions (never the predicate, which is always an
// IRI), in S/O/G order, one entry per position: a node that fills two
// positions is returned twice. This follows RDFC-1.0 precisely: a quad's
// "blank nodes" include the graph-name position wherever the algorithm says
// "blank nodes in the quad" (spec §9, Design Notes).
func blankNodesIn(q Quad) []*BlankNode {
	var out []*BlankNode
	if b, ok := q.S.(*BlankNode); ok {
		out = append(out, b)
	}
	if b, ok := q.O.(*BlankNode); ok {
		out = append(out, b)
	}
	if b, ok := q.G.(*BlankNode); ok {
		out = append(out, b)
	}
	return out
}
