package buffer

// charLen returns the length of text measured in Unicode code points.
func charLen(text string) int {
	count := 0
	for range text {
		count++
	}
	return count
}

// TextBuffer accumulates plain text and tracks the current char offset.
type TextBuffer struct {
	parts      []string
	charOffset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts:      make([]string, 0),
		charOffset: 0,
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.charOffset += charLen(text)
}

// CharOffset returns the current char offset.
func (tb *TextBuffer) CharOffset() int {
	return tb.charOffset
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range tb.parts {
		totalLen += len(p)
	}
	result := make([]byte, 0, totalLen)
	for _, p := range tb.parts {
		result = append(result, []byte(p)...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.charOffset = 0
}
