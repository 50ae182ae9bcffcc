package rdfc

import "strconv"

// issuerEntry is one (input-label, issued-label) pair in issuance order.
type issuerEntry struct {
	input  string
	issued string
}

// issuer mints stable, prefix-tagged labels for input blank-node
// identifiers. The canonical issuer used by the driver uses prefix "c14n";
// temporary issuers used inside N-degree hashing use prefix "b" (spec §4.1).
//
// Insertion order is significant: entriesInIssueOrder yields labels in the
// order they were first issued, and clone preserves that order exactly.
type issuer struct {
	prefix  string
	counter int
	order   []issuerEntry
	index   map[string]int // input label -> position in order
}

// newIssuer creates an issuer with the given label prefix.
func newIssuer(prefix string) *issuer {
	return &issuer{
		prefix: prefix,
		index:  make(map[string]int),
	}
}

// issue returns the issued label for input, minting a fresh one if input
// has not been seen before. Idempotent: issuing an already-present input
// label returns the existing issued label without side effects.
func (is *issuer) issue(input string) string {
	if pos, ok := is.index[input]; ok {
		return is.order[pos].issued
	}
	issued := is.prefix + strconv.Itoa(is.counter)
	is.counter++
	is.index[input] = len(is.order)
	is.order = append(is.order, issuerEntry{input: input, issued: issued})
	return issued
}

// has reports whether input already has an issued label.
func (is *issuer) has(input string) bool {
	_, ok := is.index[input]
	return ok
}

// get returns the issued label for input and whether it exists.
func (is *issuer) get(input string) (string, bool) {
	pos, ok := is.index[input]
	if !ok {
		return "", false
	}
	return is.order[pos].issued, true
}

// clone returns a deep, independent copy of is. The clone's iteration
// order equals the original's order at the time of cloning.
func (is *issuer) clone() *issuer {
	clone := &issuer{
		prefix:  is.prefix,
		counter: is.counter,
		order:   make([]issuerEntry, len(is.order)),
		index:   make(map[string]int, len(is.index)),
	}
	copy(clone.order, is.order)
	for k, v := range is.index {
		clone.index[k] = v
	}
	return clone
}

// entriesInIssueOrder returns the (input, issued) pairs in the order they
// were issued.
func (is *issuer) entriesInIssueOrder() []issuerEntry {
	return is.order
}
