// Package chunker splits long text into overlapping fixed-size character
// windows so each piece stays within a provider's input limits.
package chunker

// Process-wide chunking parameters, sized conservatively to keep
// completion requests reliable.
const (
	DefaultSize    = 8000
	DefaultOverlap = 300
)

// Chunk is one contiguous window of the source text. Start and End are
// byte offsets into the source; Index is the zero-based ordinal.
type Chunk struct {
	Index int
	Text  string
	Start int
	End   int
}

// Split cuts text into windows of at most size bytes, with consecutive
// windows sharing overlap bytes. Every byte of the source appears in at
// least one chunk, and the same input always yields the same chunks.
// Callers must ensure size > 0 and overlap < size; overlap smaller than
// size is what guarantees forward progress.
func Split(text string, size, overlap int) []Chunk {
	if text == "" || size <= 0 || overlap >= size || overlap < 0 {
		return nil
	}

	var chunks []Chunk
	n := len(text)
	start := 0

	for start < n {
		end := start + size
		if end > n {
			end = n
		}

		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  text[start:end],
			Start: start,
			End:   end,
		})

		if end == n {
			break
		}

		start = end - overlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}

// Count reports how many chunks Split would produce without allocating
// them.
func Count(text string, size, overlap int) int {
	if text == "" || size <= 0 || overlap >= size || overlap < 0 {
		return 0
	}
	if len(text) <= size {
		return 1
	}

	// After the first chunk each step advances size-overlap bytes.
	step := size - overlap
	remaining := len(text) - size
	return 1 + (remaining+step-1)/step
}
