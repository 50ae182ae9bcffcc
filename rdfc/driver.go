package rdfc

import (
	"sort"
	"strconv"
)

// state is the per-invocation working set the driver builds once and
// discards at the end of Canonicalize: the deduplicated dataset, the
// input-label map, the blank-node-to-quads index, and the canonical
// issuer. Nothing here is shared across invocations (spec §5).
type state struct {
	dataset Dataset
	dig     digest

	labelOf map[*BlankNode]string   // node -> input label
	nodeOf  map[string]*BlankNode   // input label -> node
	quads   map[string][]Quad       // input label -> quads mentioning it (S, O, or G position)

	canonicalIssuer *issuer
}

// quadsFor returns the quads indexed under a blank node's input label.
func (st *state) quadsFor(label string) []Quad {
	return st.quads[label]
}

// buildState performs spec §4.4 step 1: deduplicate the dataset, build the
// input-label map (honoring caller-supplied labels where present), and
// build the blank-node-to-quads index. Per spec §3 (Data Model) and the
// Design Notes' instruction to include every position wherever the
// algorithm says "blank nodes in the quad", the index covers subject,
// object, AND graph-name occurrences (test scenario 5 in spec §8 requires
// graph-only blank nodes to be indexed).
func buildState(ds Dataset, presetLabels map[*BlankNode]string, dig digest, canonicalPrefix string) *state {
	st := &state{
		dataset: NewDataset(ds.Quads()...),
		dig:     dig,
		labelOf: make(map[*BlankNode]string),
		nodeOf:  make(map[string]*BlankNode),
		quads:   make(map[string][]Quad),

		canonicalIssuer: newIssuer(canonicalPrefix),
	}

	used := make(map[string]bool, len(presetLabels))
	for _, l := range presetLabels {
		used[l] = true
	}
	fresh := 0
	assignLabel := func(b *BlankNode) {
		if _, ok := st.labelOf[b]; ok {
			return
		}
		label, ok := presetLabels[b]
		if !ok {
			for {
				label = "n" + strconv.Itoa(fresh)
				fresh++
				if !used[label] {
					break
				}
			}
		}
		st.labelOf[b] = label
		st.nodeOf[label] = b
		b.Input = label
	}

	for _, q := range st.dataset.Quads() {
		for _, b := range blankNodesIn(q) {
			assignLabel(b)
		}
	}

	for _, q := range st.dataset.Quads() {
		seen := make(map[string]bool)
		for _, b := range blankNodesIn(q) {
			label := st.labelOf[b]
			if seen[label] {
				continue
			}
			seen[label] = true
			st.quads[label] = append(st.quads[label], q)
		}
	}

	return st
}

// canonicalLabels runs spec §4.4 steps 2–4, then composes the node ->
// input-label map with the canonical issuer's mapping and returns the final
// BlankNode -> canonical-label map. Encoding to N-Quads is left to the
// caller.
func (st *state) canonicalLabels() (map[*BlankNode]string, error) {
	hashToLabels := make(map[string][]string)
	// Sort labels before hashing so first-degree hashing order is
	// deterministic regardless of Go's randomized map iteration.
	order := make([]string, 0, len(st.nodeOf))
	for label := range st.nodeOf {
		order = append(order, label)
	}
	sort.Strings(order)
	for _, label := range order {
		h := st.hashFirstDegree(label)
		hashToLabels[h] = append(hashToLabels[h], label)
	}

	hashes := make([]string, 0, len(hashToLabels))
	for h := range hashToLabels {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	var collisionHashes []string
	for _, h := range hashes {
		labels := hashToLabels[h]
		if len(labels) == 1 {
			st.canonicalIssuer.issue(labels[0])
			continue
		}
		collisionHashes = append(collisionHashes, h)
	}

	for _, h := range collisionHashes {
		st.resolveCollisionBucket(hashToLabels[h])
	}

	result := make(map[*BlankNode]string, len(st.labelOf))
	for b, label := range st.labelOf {
		issued, ok := st.canonicalIssuer.get(label)
		if !ok {
			return nil, &InvariantError{BlankNode: b, InputLabel: label}
		}
		result[b] = issued
	}
	return result, nil
}

type hashPathResult struct {
	hash       string
	label      string
	tempIssuer *issuer
}

// resolveCollisionBucket implements spec §4.4 step 4 for a single bucket
// of colliding first-degree hashes.
func (st *state) resolveCollisionBucket(labels []string) {
	var results []hashPathResult
	for _, id := range labels {
		if st.canonicalIssuer.has(id) {
			continue
		}
		temp := newIssuer("b")
		temp.issue(id)
		hash, updated := st.hashNDegree(id, temp)
		results = append(results, hashPathResult{hash: hash, label: id, tempIssuer: updated})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].hash < results[j].hash })

	for _, r := range results {
		if !st.canonicalIssuer.has(r.label) {
			st.canonicalIssuer.issue(r.label)
		}
		for _, entry := range r.tempIssuer.entriesInIssueOrder() {
			if !st.canonicalIssuer.has(entry.input) {
				st.canonicalIssuer.issue(entry.input)
			}
		}
	}
}
