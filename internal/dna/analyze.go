package dna

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCharacter is returned when Analyze meets a byte that has no
// complement. Callers are expected to run IsValid first; this error is the
// guard against skipping that step, never a silent fallback.
var ErrInvalidCharacter = errors.New("invalid nucleotide character")

// Analysis holds the fields derived from a sequence at write time.
type Analysis struct {
	Length            int
	GCContent         float64
	ReverseComplement string
}

// Analyze normalizes seq to uppercase and computes its length, GC content
// and reverse complement. GC content is (G+C)/length*100 rounded
// half-away-from-zero to 2 decimal places, and exactly 0 for the empty
// string. The empty string yields an empty reverse complement.
func Analyze(seq string) (Analysis, error) {
	upper := strings.ToUpper(seq)
	n := len(upper)

	gc := 0
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		b := upper[i]
		switch b {
		case 'G':
			gc++
			rc[n-1-i] = 'C'
		case 'C':
			gc++
			rc[n-1-i] = 'G'
		case 'A':
			rc[n-1-i] = 'T'
		case 'T':
			rc[n-1-i] = 'A'
		default:
			return Analysis{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, b, i)
		}
	}

	content := 0.0
	if n > 0 {
		content = math.Round(float64(gc)/float64(n)*100*100) / 100
	}

	return Analysis{
		Length:            n,
		GCContent:         content,
		ReverseComplement: string(rc),
	}, nil
}
