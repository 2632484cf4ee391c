// core/align/align.go
package align

// Op identifies the edit type of an alignment chunk.
type Op string

const (
	OpEqual      Op = "equal"
	OpInsert     Op = "insert"
	OpDelete     Op = "delete"
	OpSubstitute Op = "substitute"
)

// Chunk is a maximal run of one edit type linking a reference span to a
// hypothesis span. Spans are half-open [Start,End) token indices. Insert
// chunks have an empty reference span, delete chunks an empty hypothesis
// span; equal/substitute spans have the same non-zero length and pair
// position-for-position.
type Chunk struct {
	Type     Op
	RefStart int
	RefEnd   int
	HypStart int
	HypEnd   int
}

// Sequences aligns hyp against ref and returns the minimum-cost edit script
// as an ordered chunk list (unit cost per insert/delete/substitute, zero for
// equal). Consecutive positions with the same edit type are merged into one
// chunk. The output always satisfies Validate.
func Sequences[S comparable](ref, hyp []S) []Chunk {
	n, m := len(ref), len(hyp)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ref[i-1] == hyp[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			best := d[i-1][j-1] // substitute
			if v := d[i-1][j]; v < best { // delete
				best = v
			}
			if v := d[i][j-1]; v < best { // insert
				best = v
			}
			d[i][j] = best + 1
		}
	}

	// Backtrace from (n,m) into one op per aligned position.
	ops := make([]Op, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1]:
			ops = append(ops, OpEqual)
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			ops = append(ops, OpSubstitute)
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			ops = append(ops, OpDelete)
			i--
		default:
			ops = append(ops, OpInsert)
			j--
		}
	}
	for a, b := 0, len(ops)-1; a < b; a, b = a+1, b-1 {
		ops[a], ops[b] = ops[b], ops[a]
	}

	// Merge runs of one op into chunks.
	var chunks []Chunk
	ri, hi := 0, 0
	for k := 0; k < len(ops); {
		op := ops[k]
		c := Chunk{Type: op, RefStart: ri, RefEnd: ri, HypStart: hi, HypEnd: hi}
		for k < len(ops) && ops[k] == op {
			if op != OpInsert {
				c.RefEnd++
				ri++
			}
			if op != OpDelete {
				c.HypEnd++
				hi++
			}
			k++
		}
		chunks = append(chunks, c)
	}
	return chunks
}

// Counts tallies aligned positions by edit type.
type Counts struct {
	Equal      int
	Insert     int
	Delete     int
	Substitute int
}

// CountOps sums span lengths per chunk type. For a minimum-cost alignment,
// Errors() equals the edit distance between the two sequences.
func CountOps(chunks []Chunk) Counts {
	var c Counts
	for _, ch := range chunks {
		switch ch.Type {
		case OpEqual:
			c.Equal += ch.RefEnd - ch.RefStart
		case OpSubstitute:
			c.Substitute += ch.RefEnd - ch.RefStart
		case OpDelete:
			c.Delete += ch.RefEnd - ch.RefStart
		case OpInsert:
			c.Insert += ch.HypEnd - ch.HypStart
		}
	}
	return c
}

// Errors returns the number of edited positions (the edit-distance numerator).
func (c Counts) Errors() int { return c.Insert + c.Delete + c.Substitute }

// ErrorRate divides Errors by the reference length. A zero-length reference
// yields 0, matching the rate convention used throughout the stats tables.
func (c Counts) ErrorRate(refLen int) float64 {
	if refLen == 0 {
		return 0
	}
	return float64(c.Errors()) / float64(refLen)
}
