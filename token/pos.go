package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LineCol returns the zero based line and column (in bytes) of offset off in
// src.
func LineCol(src string, off int) (int, int) {
	off = min(max(off, 0), len(src))
	line := strings.Count(src[:off], "\n")
	col := off
	if i := strings.LastIndexByte(src[:off], '\n'); i >= 0 {
		col = off - i - 1
	}
	return line, col
}

// CharOffset converts byte offset off of src to a character offset. Each
// byte of an invalid UTF-8 sequence counts as one character.
func CharOffset(src string, off int) int {
	off = min(max(off, 0), len(src))
	return utf8.RuneCountInString(src[:off])
}

// ByteOffset converts character offset n of src back to a byte offset.
func ByteOffset(src string, n int) int {
	i := 0
	for ; n > 0 && i < len(src); n-- {
		_, sz := utf8.DecodeRuneInString(src[i:])
		i += sz
	}
	return i
}

// Context describes offset off of src with a short quoted sample around it,
// for diagnostics.
func Context(src string, off int) string {
	off = min(max(off, 0), len(src))
	sample := strconv.Quote(src[max(0, off-5):min(off+5, len(src))])
	sample = sample[1 : len(sample)-1]
	line, col := LineCol(src, off)
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, off, line, col)
}
