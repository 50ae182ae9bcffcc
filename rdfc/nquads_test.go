package rdfc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNQuadsParsesTripleAndQuad(t *testing.T) {
	input := `<http://ex/a> <http://ex/p> "v" .
<http://ex/a> <http://ex/p> "v" <http://ex/g> .
`
	labels, ds, err := DecodeNQuads(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, labels)
	require.Equal(t, 2, ds.Len())

	require.Nil(t, ds.Quads()[0].G)
	require.Equal(t, IRI{Value: "http://ex/g"}, ds.Quads()[1].G)
}

func TestDecodeNQuadsSharesBlankNodeByLabel(t *testing.T) {
	input := `_:x <http://ex/p> _:x .
`
	labels, ds, err := DecodeNQuads(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, labels, 1)

	q := ds.Quads()[0]
	require.Same(t, q.S.(*BlankNode), q.O.(*BlankNode))
	require.Equal(t, "x", labels[q.S.(*BlankNode)])
}

func TestDecodeNQuadsParsesLiteralForms(t *testing.T) {
	input := `<http://ex/a> <http://ex/p> "hi"@en .
<http://ex/a> <http://ex/p> "1"^^<http://www.w3.org/2001/XMLSchema#integer> .
`
	_, ds, err := DecodeNQuads(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	lang := ds.Quads()[0].O.(Literal)
	require.Equal(t, "en", lang.Lang)
	require.Equal(t, "hi", lang.Lexical)

	typed := ds.Quads()[1].O.(Literal)
	require.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", typed.Datatype.Value)
}

func TestDecodeNQuadsSkipsBlankAndCommentLines(t *testing.T) {
	input := "# a comment\n\n<http://ex/a> <http://ex/p> \"v\" .\n   \n"
	_, ds, err := DecodeNQuads(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
}

func TestDecodeNQuadsRejectsMalformedLine(t *testing.T) {
	input := `<http://ex/a> <http://ex/p> .
`
	_, _, err := DecodeNQuads(strings.NewReader(input))
	require.Error(t, err)
	require.Equal(t, ErrCodeParseError, Code(err))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, pe.Line)
}

func TestEncodeNQuadsCanonicalUsesProvidedLabels(t *testing.T) {
	x := &BlankNode{}
	ds := NewDataset(Quad{S: x, P: IRI{Value: "http://ex/p"}, O: Literal{Lexical: "v"}})

	var buf strings.Builder
	err := EncodeNQuads(&buf, ds, EncodeOptions{Canonical: true, Labels: map[*BlankNode]string{x: "c14n0"}})
	require.NoError(t, err)
	require.Equal(t, "_:c14n0 <http://ex/p> \"v\" .\n", buf.String())
}

func TestEncodeNQuadsFallsBackToInputLabelWhenNotGenerating(t *testing.T) {
	x := &BlankNode{Input: "orig"}
	ds := NewDataset(Quad{S: x, P: IRI{Value: "http://ex/p"}, O: Literal{Lexical: "v"}})

	var buf strings.Builder
	err := EncodeNQuads(&buf, ds, EncodeOptions{Labels: nil, GenerateMissing: false})
	require.NoError(t, err)
	require.Equal(t, "_:orig <http://ex/p> \"v\" .\n", buf.String())
}

func TestEncodeNQuadsGeneratesMissingLabelsWhenRequested(t *testing.T) {
	x := &BlankNode{}
	ds := NewDataset(Quad{S: x, P: IRI{Value: "http://ex/p"}, O: Literal{Lexical: "v"}})

	var buf strings.Builder
	err := EncodeNQuads(&buf, ds, EncodeOptions{GenerateMissing: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(buf.String(), "_:"))
}

func TestNQuadsRoundTripPreservesStructure(t *testing.T) {
	input := `<http://ex/a> <http://ex/p> "v"@en <http://ex/g> .
`
	_, ds, err := DecodeNQuads(strings.NewReader(input))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EncodeNQuads(&buf, ds, EncodeOptions{}))
	require.Equal(t, input, buf.String())
}
