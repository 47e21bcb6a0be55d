package types

// LineRecord is one line of text extracted from a payload. Index is 0-based
// and contiguous in the byte order of the source. Text has trailing
// newline/record separators stripped; interior bytes are preserved verbatim.
type LineRecord struct {
	Index int
	Text  string
}
