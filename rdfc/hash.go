package rdfc

import (
	"sort"
	"strings"
)

// hashFirstDegree computes the first-degree hash of the blank node with
// input label ref (spec §4.3.1): render each quad mentioning ref with the
// reference/non-reference substitution rule, sort the results in ascending
// byte order, concatenate, and hash.
func (st *state) hashFirstDegree(ref string) string {
	quads := st.quadsFor(ref)
	lines := make([]string, 0, len(quads))
	label := func(b *BlankNode) string {
		if b.Input == ref {
			return "a"
		}
		return "z"
	}
	for _, q := range quads {
		lines = append(lines, renderQuad(q, label))
	}
	sort.Strings(lines)
	var data strings.Builder
	for _, l := range lines {
		data.WriteString(l)
	}
	return st.dig([]byte(data.String()))
}

// hashNDegree computes the N-degree hash of the blank node with input
// label ref, breaking first-degree collisions via permutation search over
// related blank nodes (spec §4.3.2). pathIssuer tracks temporary labels
// assigned along the current exploratory path and is never mutated
// directly — callers receive a (possibly different) updated issuer back.
func (st *state) hashNDegree(ref string, pathIssuer *issuer) (string, *issuer) {
	grouped := st.groupRelatedByTag(ref)

	tags := make([]string, 0, len(grouped))
	for t := range grouped {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	var dataToHash strings.Builder
	for _, tag := range tags {
		labels := grouped[tag]
		sort.Strings(labels)

		chosenPath := ""
		var chosenIssuer *issuer

		perm := append([]string(nil), labels...)
		for {
			path, issuerCopy, abandoned := st.tryPermutation(perm, pathIssuer, chosenPath)
			if !abandoned && (chosenPath == "" || path < chosenPath) {
				chosenPath = path
				chosenIssuer = issuerCopy
			}
			if !nextPermutation(perm) {
				break
			}
		}

		dataToHash.WriteString(tag)
		dataToHash.WriteString(chosenPath)
		pathIssuer = chosenIssuer
	}

	return st.dig([]byte(dataToHash.String())), pathIssuer
}

// tryPermutation runs one permutation of a tag group's related labels
// through the path-building steps of spec §4.3.2 step 2.b, including the
// early-exit pruning check. It returns the resulting path, the issuer
// state at the end of the path (only meaningful if !abandoned), and
// whether the permutation was abandoned early.
func (st *state) tryPermutation(perm []string, pathIssuer *issuer, chosenPath string) (string, *issuer, bool) {
	issuerCopy := pathIssuer.clone()
	path := ""
	var recursionList []string

	for _, r := range perm {
		if canonLabel, ok := st.canonicalIssuer.get(r); ok {
			path += "_:" + canonLabel
		} else if tempLabel, ok := issuerCopy.get(r); ok {
			path += "_:" + tempLabel
		} else {
			tempLabel := issuerCopy.issue(r)
			path += "_:" + tempLabel
			recursionList = append(recursionList, r)
		}
		if shouldAbandon(path, chosenPath) {
			return path, issuerCopy, true
		}
	}

	for _, r := range recursionList {
		subHash, subIssuer := st.hashNDegree(r, issuerCopy)
		tempLabel, _ := issuerCopy.get(r)
		path += "_:" + tempLabel + "<" + subHash + ">"
		issuerCopy = subIssuer
		if shouldAbandon(path, chosenPath) {
			return path, issuerCopy, true
		}
	}

	return path, issuerCopy, false
}

// shouldAbandon implements spec §4.3.2's early-exit rule: once the
// in-progress path is both longer than and lexicographically greater than
// the best path found so far, no further appension can make it win.
func shouldAbandon(path, chosenPath string) bool {
	return chosenPath != "" && len(path) > len(chosenPath) && path > chosenPath
}

// groupRelatedByTag implements spec §4.3.2 step 1: partition blank nodes
// related to ref by a tag combining the related node's first-degree hash,
// its position in the quad, and (for subject/object positions) the quad's
// predicate.
func (st *state) groupRelatedByTag(ref string) map[string][]string {
	grouped := make(map[string][]string)
	for _, q := range st.quadsFor(ref) {
		for _, rel := range relatedNodesIn(q, ref) {
			relHash := st.hashFirstDegree(rel.label)
			tag := relHash + rel.position
			if rel.position != "g" {
				tag += q.P.Value
			}
			grouped[tag] = append(grouped[tag], rel.label)
		}
	}
	return grouped
}

type positionedLabel struct {
	label    string
	position string // "s", "o", or "g"
}

// relatedNodesIn returns every blank node in q's subject, object, and
// graph-name positions other than ref, tagged with its position. A blank
// node occupying more than one position in the same quad (e.g. subject and
// graph) yields one entry per position, per spec §4.3.2 step 1 ("once per
// distinct (quad, position) occurrence").
func relatedNodesIn(q Quad, ref string) []positionedLabel {
	var out []positionedLabel
	if b, ok := q.S.(*BlankNode); ok && b.Input != ref {
		out = append(out, positionedLabel{label: b.Input, position: "s"})
	}
	if b, ok := q.O.(*BlankNode); ok && b.Input != ref {
		out = append(out, positionedLabel{label: b.Input, position: "o"})
	}
	if b, ok := q.G.(*BlankNode); ok && b.Input != ref {
		out = append(out, positionedLabel{label: b.Input, position: "g"})
	}
	return out
}

// nextPermutation advances perm in place to the next lexicographically
// greater permutation (standard next_permutation algorithm), returning
// false if perm was already the last permutation (and resetting it to the
// first/sorted one). Duplicate values in perm are handled correctly: the
// algorithm never revisits an ordering already produced by an earlier,
// value-equal swap, which is exactly the "enumerate all permutations" of a
// multiset spec §9 (Design Notes) calls for.
func nextPermutation(perm []string) bool {
	n := len(perm)
	if n < 2 {
		return false
	}
	k := n - 2
	for k >= 0 && perm[k] >= perm[k+1] {
		k--
	}
	if k < 0 {
		sort.Strings(perm)
		return false
	}
	l := n - 1
	for perm[l] <= perm[k] {
		l--
	}
	perm[k], perm[l] = perm[l], perm[k]
	for i, j := k+1, n-1; i < j; i, j = i+1, j-1 {
		perm[i], perm[j] = perm[j], perm[i]
	}
	return true
}
