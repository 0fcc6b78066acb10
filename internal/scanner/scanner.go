// Package scanner finds #hashtag and @mention spans in free-form text.
//
// Matching is a hand-written single pass over the runes rather than a
// regular expression: predictable linear time on adversarial input, and
// the word-character table stays trivial to extend.
package scanner

import (
	"sort"
	"unicode/utf8"

	"github.com/riverfjs/tagify-go/internal/types"
)

// IsWordRune reports whether r may appear in a hashtag or mention body.
//
// ASCII letters, digits and underscore, plus the extended letter ranges
// social tags are written in: Latin-1 Supplement / Latin Extended, CJK
// ideographs, kana and hangul.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9', r == '_':
		return true
	case r >= 0x00C0 && r <= 0x024F: // Latin-1 Supplement + Latin Extended-A/B
		return true
	case r >= 0x3040 && r <= 0x30FF: // Hiragana + Katakana
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return true
	}
	return false
}

// Scan 扫描全文并返回按起始偏移升序排列的 token 列表
//
// 两个类别各自独立扫描一遍（先 #话题 后 @提及），再按字符起始偏移
// 合并排序。两种 sigil 不可能出现在同一偏移，但排序使用稳定排序，
// 因此若真出现同偏移，Hashtag 一定排在 Mention 前。
func Scan(text string) []types.Token {
	if text == "" {
		return nil
	}

	tokens := scanSigil(text, '#', types.KindHashtag)
	tokens = append(tokens, scanSigil(text, '@', types.KindMention)...)

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})
	return tokens
}

// scanSigil collects every run of word runes immediately following sigil.
// A bare sigil with no word rune after it yields no token. Matches are
// greedy: the run extends to the first non-word rune, which may itself
// start the next token ("#mixed#content" is two adjacent hashtags).
func scanSigil(text string, sigil rune, kind types.TokenKind) []types.Token {
	var tokens []types.Token

	byteOff := 0
	charOff := 0
	for byteOff < len(text) {
		r, size := utf8.DecodeRuneInString(text[byteOff:])
		if r != sigil {
			byteOff += size
			charOff++
			continue
		}

		// Consume the word run after the sigil
		wordBytes := 0
		wordChars := 0
		for byteOff+size+wordBytes < len(text) {
			wr, wsize := utf8.DecodeRuneInString(text[byteOff+size+wordBytes:])
			if !IsWordRune(wr) {
				break
			}
			wordBytes += wsize
			wordChars++
		}

		if wordChars == 0 {
			byteOff += size
			charOff++
			continue
		}

		tokens = append(tokens, types.Token{
			Kind:      kind,
			Start:     charOff,
			End:       charOff + 1 + wordChars,
			ByteStart: byteOff,
			ByteEnd:   byteOff + size + wordBytes,
		})
		byteOff += size + wordBytes
		charOff += 1 + wordChars
	}

	return tokens
}
