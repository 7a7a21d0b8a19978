package jovial

// This file manages the fixed J73 keyword set and their hover descriptions.
// Unlike a SQL dialect's reserved-word list, J73's keyword set does not vary
// by flavor or version, so there is no lazy per-flavor construction here —
// just a literal map built once at init.

// keywords is the full J73 keyword set (§4.1), grouped by kind for
// readability. Lookup is always done against the upper-cased token.
var keywords = map[string]bool{
	// Module structure
	"START": true, "TERM": true, "BEGIN": true, "END": true, "COMPOOL": true, "PROGRAM": true,
	// Declarations
	"ITEM": true, "TABLE": true, "PROC": true, "TYPE": true, "DEFINE": true, "DEF": true, "REF": true,
	// Type abbreviations
	"S": true, "U": true, "F": true, "A": true, "B": true, "C": true, "P": true, "STATUS": true, "LIKE": true,
	// Attributes
	"STATIC": true, "CONSTANT": true, "PARALLEL": true, "OVERLAY": true, "POS": true, "W": true, "D": true,
	"ROUND": true, "TRUNCATE": true, "DENSE": true, "BLOCK": true,
	// Control flow
	"IF": true, "THEN": true, "ELSE": true, "FOR": true, "BY": true, "WHILE": true, "UNTIL": true,
	"CASE": true, "DEFAULT": true, "FALLTHRU": true, "GOTO": true, "EXIT": true, "ABORT": true, "RETURN": true, "STOP": true,
	// Operators
	"AND": true, "OR": true, "NOT": true, "XOR": true, "EQV": true, "MOD": true, "ABS": true, "SGN": true,
	// Built-in functions
	"LOC": true, "NEXT": true, "BIT": true, "BYTE": true, "SHIFTL": true, "SHIFTR": true, "SHIFTLA": true, "SHIFTRA": true,
	"FIRST": true, "LAST": true, "LBOUND": true, "HBOUND": true, "NENT": true, "NWDSEN": true, "BITSIZE": true, "BYTESIZE": true, "WORDSIZE": true,
	// I/O
	"INPUT": true, "OUTPUT": true, "OPEN": true, "CLOSE": true,
}

// keywordDescriptions gives a short English description for the subset of
// keywords commonly enough used to warrant one. Keywords not listed here
// fall back to a generic "J73 keyword: <KEYWORD>" description in
// keywordDescription, rather than inventing prose for every entry.
var keywordDescriptions = map[string]string{
	"START":   "Begin main program module",
	"TERM":    "End program module",
	"BEGIN":   "Begin block",
	"END":     "End block",
	"COMPOOL": "Communication pool module (shared data)",
	"ITEM":    "Scalar variable declaration",
	"TABLE":   "Array/structure declaration",
	"PROC":    "Procedure declaration",
	"TYPE":    "User-defined type declaration",
	"DEFINE":  "Compile-time constant",
	"DEF":     "Import from COMPOOL",
	"REF":     "Reference to external",
	"S":       "Signed integer type",
	"U":       "Unsigned integer type",
	"F":       "Floating-point type",
	"A":       "Fixed-point (scaled) type",
	"B":       "Bit string type",
	"C":       "Character string type",
	"P":       "Pointer type",
	"STATUS":  "Enumeration type",
	"STATIC":  "Static allocation (persistent)",
	"CONSTANT": "Read-only value",
	"PARALLEL": "Parallel allocation for bit-packing",
	"IF":      "Conditional statement",
	"FOR":     "Counted loop",
	"WHILE":   "Conditional loop (test before)",
	"UNTIL":   "Conditional loop (test after)",
	"CASE":    "Multi-way branch",
	"GOTO":    "Unconditional branch",
	"RETURN":  "Return from procedure",
	"EXIT":    "Exit from loop",
	"ABORT":   "Abort program execution",
	"LOC":     "Location (address) function",
	"NEXT":    "Next value in sequence",
	"BIT":     "Bit extraction function",
	"BYTE":    "Byte extraction function",
	"SHIFTL":  "Shift left",
	"SHIFTR":  "Shift right",
}

// IsKeyword reports whether word (case-insensitive) is a J73 keyword.
func IsKeyword(word string) bool {
	return keywords[foldName(word)]
}

// keywordDescription returns the hover description for a keyword, falling
// back to a generic description for keywords with no entry in
// keywordDescriptions.
func keywordDescription(word string) string {
	folded := foldName(word)
	if desc, ok := keywordDescriptions[folded]; ok {
		return desc
	}
	return "J73 keyword: " + folded
}
