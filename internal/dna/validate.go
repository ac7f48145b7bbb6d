package dna

// IsValid reports whether seq is a non-empty string made up exclusively of
// the bases A, T, G and C, in either case. Matching is whole-string.
func IsValid(seq string) bool {
	if len(seq) == 0 {
		return false
	}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'G', 'C', 'a', 't', 'g', 'c':
		default:
			return false
		}
	}
	return true
}
