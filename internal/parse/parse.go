// Package parse turns the backend's loosely formatted markdown replies
// into typed course records. Each parser is a single pass over the lines
// of the reply and recognizes only the literal prefixes its matching
// prompt asked for. Malformed input is never an error: unrecognized
// lines land in the Diagnostics list and an empty reply yields an empty
// collection. Deciding whether the extracted structure is sufficient is
// the validator's job, not the parsers'.
package parse

// Diagnostics records the input lines a parser could not attribute to
// any field. It exists so the validator and tests can see why a reply
// under-parsed instead of the lines vanishing silently.
type Diagnostics []string

func (d *Diagnostics) skip(line string) {
	*d = append(*d, line)
}
