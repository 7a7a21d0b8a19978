package jovial

import "strings"

// stripComment removes a J73 end-of-line comment from a single physical
// line. A double quote that is not inside an apostrophe-delimited string
// starts a comment that runs to the end of the line; everything from that
// quote onward, including the quote itself, is dropped. An apostrophe is
// never a comment delimiter. Outside a string, an apostrophe that directly
// follows a letter or digit is part of an identifier (e.g. FLIGHT'CONTROL)
// and leaves string mode alone; any other apostrophe opens a string, and
// inside a string an apostrophe closes it.
//
// String/comment state is local to one call: it is not carried over from
// the previous line, matching the line-oriented recogniser this is built
// for (§4.1).
func stripComment(line string) string {
	var b strings.Builder
	inString := false
	var prev rune
	for _, r := range line {
		if r == '"' && !inString {
			break
		}
		if r == '\'' {
			identChar := (prev >= 'A' && prev <= 'Z') || (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9')
			if inString || !identChar {
				inString = !inString
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// isStatementEnd reports whether a stripped, whitespace-trimmed line
// completes a buffered statement: either it ends with a semicolon, or on
// its own it is one of the block markers BEGIN, END, START, TERM (§4.1).
func isStatementEnd(stripped string) bool {
	if strings.HasSuffix(stripped, ";") {
		return true
	}
	switch strings.ToUpper(stripped) {
	case "BEGIN", "END", "START", "TERM":
		return true
	}
	return false
}

// splitLines splits document text into physical lines the way the
// recogniser walks them: on "\n", with no trailing-newline special case, so
// line indices line up 1:1 with what an editor reports as line numbers.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
