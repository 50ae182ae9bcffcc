// Package rdfc implements the W3C RDF Dataset Canonicalization (RDFC-1.0)
// algorithm: deterministic labeling of blank nodes so that isomorphic
// datasets serialize to byte-identical canonical N-Quads.
//
// The package is organized around the five pieces of the algorithm:
//   - Issuer: mints stable "c14nN" / "bN" labels (issuer.go).
//   - Serializer: renders a quad to N-Quads text with a chosen blank-node
//     substitution rule (serializer.go).
//   - Hasher: computes first-degree and N-degree hashes, including the
//     permutation-search collision breaker (hash.go).
//   - Driver: orchestrates state construction, bucketing, and final label
//     issuance (driver.go).
//   - Facade: Canonicalize, IsIsomorphic, ToCanonicalizedDataset, and the
//     N-Quads conversions callers actually use (facade.go).
//
// Example:
//
//	out, err := rdfc.Canonicalize(dataset)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(out)
//
// The engine is pure and single-threaded: one call to Canonicalize performs
// no I/O and is safe to call concurrently with other calls on disjoint
// inputs. Worst-case runtime is super-polynomial in adversarial inputs with
// many first-degree hash collisions; callers who need a time bound should
// run Canonicalize on a goroutine they can abandon.
package rdfc
