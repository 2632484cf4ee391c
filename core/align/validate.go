// core/align/validate.go
package align

import "fmt"

// Validate checks that chunks form a well-formed alignment of sequences of
// the given lengths: spans contiguous and in order, both sides fully
// covered, and span shapes consistent with each chunk's type. It returns
// the first violation found. A nil/empty chunk list is valid only for two
// empty sequences.
func Validate(chunks []Chunk, refLen, hypLen int) error {
	ri, hi := 0, 0
	for k, c := range chunks {
		if c.RefStart != ri || c.HypStart != hi {
			return fmt.Errorf("chunk %d: spans start at (%d,%d), want contiguous (%d,%d)", k, c.RefStart, c.HypStart, ri, hi)
		}
		if c.RefEnd < c.RefStart || c.HypEnd < c.HypStart {
			return fmt.Errorf("chunk %d: negative span", k)
		}
		rl, hl := c.RefEnd-c.RefStart, c.HypEnd-c.HypStart
		switch c.Type {
		case OpInsert:
			if rl != 0 || hl == 0 {
				return fmt.Errorf("chunk %d: insert needs empty reference span and non-empty hypothesis span", k)
			}
		case OpDelete:
			if hl != 0 || rl == 0 {
				return fmt.Errorf("chunk %d: delete needs empty hypothesis span and non-empty reference span", k)
			}
		case OpEqual, OpSubstitute:
			if rl == 0 || rl != hl {
				return fmt.Errorf("chunk %d: %s spans must have equal non-zero length (got %d,%d)", k, c.Type, rl, hl)
			}
		default:
			return fmt.Errorf("chunk %d: unknown type %q", k, c.Type)
		}
		ri, hi = c.RefEnd, c.HypEnd
	}
	if ri != refLen || hi != hypLen {
		return fmt.Errorf("alignment covers (%d,%d) of (%d,%d) tokens", ri, hi, refLen, hypLen)
	}
	return nil
}
