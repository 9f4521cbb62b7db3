package usecase

// Identifier characters for project paths, tag names and priority tokens.
func isIdentChar(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_' || b == '-'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// boundaryBefore reports whether position i starts a fresh token, i.e. the
// preceding byte is not an identifier character. Keeps "a@b" or "x#y" from
// being read as metadata.
func boundaryBefore(text string, i int) bool {
	return i == 0 || !isIdentChar(text[i-1])
}

// identRun returns the end of the identifier run starting at j.
func identRun(text string, j int) int {
	for j < len(text) && isIdentChar(text[j]) {
		j++
	}
	return j
}
