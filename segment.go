package tagify

// CharLen returns the length of text measured in Unicode code points.
//
// The truncation budget counts code points, not Go string bytes or
// rendered cells. Token offsets use the same unit, so budget math and
// offset math never disagree.
func CharLen(text string) int {
	count := 0
	for range text {
		count++
	}
	return count
}

// TotalCharLen returns the combined char length of all segment texts.
func TotalCharLen(segments []Segment) int {
	total := 0
	for _, seg := range segments {
		total += CharLen(seg.Text)
	}
	return total
}

// JoinText concatenates segment texts in order.
//
// For an untruncated segment stream this reproduces the original input
// exactly (the builder's round-trip invariant).
func JoinText(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	totalLen := 0
	for _, seg := range segments {
		totalLen += len(seg.Text)
	}
	result := make([]byte, 0, totalLen)
	for _, seg := range segments {
		result = append(result, seg.Text...)
	}
	return string(result)
}

// FilterKind returns the segments of the given kind, in order.
func FilterKind(segments []Segment, kind SegmentKind) []Segment {
	result := []Segment{}
	for _, seg := range segments {
		if seg.Kind == kind {
			result = append(result, seg)
		}
	}
	return result
}
