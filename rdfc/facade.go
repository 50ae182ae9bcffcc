package rdfc

import (
	"strings"
)

// Triple is an RDF triple: a quad without a graph name.
type Triple struct {
	S Term
	P IRI
	O Term
}

// ToQuad converts a triple to a quad in the default graph.
func (t Triple) ToQuad() Quad { return Quad{S: t.S, P: t.P, O: t.O} }

// Option configures a canonicalization call.
type Option func(*Options)

// Options configures Canonicalize and its siblings (spec §4.5).
type Options struct {
	// HashAlgorithm selects SHA-256 (default) or SHA-384.
	HashAlgorithm HashAlgorithm
	// BlankNodePrefix is the canonical issuer's label prefix (default "c14n").
	BlankNodePrefix string
	// InputLabels supplies preferred input labels for specific blank
	// nodes, used by to_canonicalized_dataset's input_labels parameter.
	// Nodes absent from this map get a fresh generated label.
	InputLabels map[*BlankNode]string
}

func defaultOptions() Options {
	return Options{
		HashAlgorithm:   SHA256,
		BlankNodePrefix: "c14n",
	}
}

func resolveOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHashAlgorithm selects the digest used for first- and N-degree hashing.
func WithHashAlgorithm(algo HashAlgorithm) Option {
	return func(o *Options) { o.HashAlgorithm = algo }
}

// WithBlankNodePrefix overrides the canonical issuer's label prefix.
func WithBlankNodePrefix(prefix string) Option {
	return func(o *Options) { o.BlankNodePrefix = prefix }
}

// WithInputLabels supplies preferred input labels for specific blank nodes.
func WithInputLabels(labels map[*BlankNode]string) Option {
	return func(o *Options) { o.InputLabels = labels }
}

// CanonicalizedDataset is the result of to_canonicalized_dataset: the
// original dataset together with the canonical label issued for each of
// its blank nodes.
type CanonicalizedDataset struct {
	InputDataset      Dataset
	IssuedIdentifiers map[*BlankNode]string
}

// ToCanonicalizedDataset runs the canonicalization driver (spec §4.4) and
// returns the issued canonical labels without serializing to N-Quads. This
// is the operation every other facade entry point builds on.
func ToCanonicalizedDataset(ds Dataset, opts ...Option) (CanonicalizedDataset, error) {
	o := resolveOptions(opts...)
	prefix := o.BlankNodePrefix
	if prefix == "" {
		prefix = "c14n"
	}

	st := buildState(ds, o.InputLabels, newDigest(o.HashAlgorithm), prefix)

	labels, err := st.canonicalLabels()
	if err != nil {
		return CanonicalizedDataset{}, err
	}
	return CanonicalizedDataset{InputDataset: st.dataset, IssuedIdentifiers: labels}, nil
}

// ToCanonicalizedDatasetFromNQuads parses N-Quads text and canonicalizes
// the resulting dataset, using each blank node's original N-Quads label as
// its input label (spec §4.4 step 1: "use the caller-supplied label if
// provided") unless the caller overrides InputLabels via WithInputLabels.
func ToCanonicalizedDatasetFromNQuads(input string, opts ...Option) (CanonicalizedDataset, error) {
	decodedLabels, ds, err := DecodeNQuads(strings.NewReader(input))
	if err != nil {
		return CanonicalizedDataset{}, err
	}

	o := resolveOptions(opts...)
	if o.InputLabels == nil {
		o.InputLabels = decodedLabels
	}
	return ToCanonicalizedDataset(ds, withResolvedOptions(o))
}

// withResolvedOptions wraps an already-resolved Options value as a single
// Option, so callers that need to inject a computed default (like the
// decoded N-Quads labels above) can still go through the normal
// resolveOptions pipeline.
func withResolvedOptions(resolved Options) Option {
	return func(o *Options) { *o = resolved }
}

// ToNQuads serializes a CanonicalizedDataset to canonical N-Quads text,
// using the issued identifiers and refusing to mint fresh blank-node
// labels for any node that was somehow not issued one (spec §4.5).
func ToNQuads(cd CanonicalizedDataset) (string, error) {
	var buf strings.Builder
	err := EncodeNQuads(&buf, cd.InputDataset, EncodeOptions{
		Canonical:       true,
		Labels:          cd.IssuedIdentifiers,
		GenerateMissing: false,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Canonicalize returns the canonical N-Quads serialization of a dataset.
func Canonicalize(ds Dataset, opts ...Option) (string, error) {
	cd, err := ToCanonicalizedDataset(ds, opts...)
	if err != nil {
		return "", err
	}
	return ToNQuads(cd)
}

// CanonicalizeGraph returns the canonical N-Quads serialization of a set
// of triples, treated as the default graph.
func CanonicalizeGraph(triples []Triple, opts ...Option) (string, error) {
	ds := Dataset{}
	for _, t := range triples {
		ds.Add(t.ToQuad())
	}
	return Canonicalize(ds, opts...)
}

// IsIsomorphic reports whether two datasets are isomorphic: their
// canonical N-Quads serializations are byte-identical.
func IsIsomorphic(a, b Dataset, opts ...Option) (bool, error) {
	ca, err := Canonicalize(a, opts...)
	if err != nil {
		return false, err
	}
	cb, err := Canonicalize(b, opts...)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}

// IsIsomorphicGraphs reports whether two triple sets are isomorphic.
func IsIsomorphicGraphs(a, b []Triple, opts ...Option) (bool, error) {
	ca, err := CanonicalizeGraph(a, opts...)
	if err != nil {
		return false, err
	}
	cb, err := CanonicalizeGraph(b, opts...)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}
