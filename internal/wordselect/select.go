package wordselect

// vowels is never mutated.
var vowels = [256]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// VowelCount reports how many runes of word are one of a, e, i, o, u.
// The letter y is not a vowel.
func VowelCount(word string) int {
	count := 0
	for i := 0; i < len(word); i++ {
		if vowels[word[i]] {
			count++
		}
	}
	return count
}

// LongestWord returns the longest normalized word in text. Ties on length go
// to the word with the most vowels, then to the earliest word. The boolean is
// false when text contains no words after normalization.
func LongestWord(text string) (string, bool) {
	words := Words(text)
	if len(words) == 0 {
		return "", false
	}

	longest := 0
	var candidates []string
	for _, word := range words {
		switch n := len(word); {
		case n > longest:
			longest = n
			candidates = append(candidates[:0], word)
		case n == longest:
			candidates = append(candidates, word)
		}
	}

	if len(candidates) == 1 {
		return candidates[0], true
	}
	return mostVowels(candidates), true
}

// mostVowels keeps the first candidate whose vowel count strictly exceeds the
// best seen so far, so equal counts never displace an earlier word.
func mostVowels(candidates []string) string {
	best := candidates[0]
	bestCount := VowelCount(best)
	for _, word := range candidates[1:] {
		if count := VowelCount(word); count > bestCount {
			best = word
			bestCount = count
		}
	}
	return best
}
