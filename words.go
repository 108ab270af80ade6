package scout

import (
	"regexp"
	"sort"
	"strings"
)

// nonWordRE matches what is stripped from words before counting.
var nonWordRE = regexp.MustCompile(`[\W_]+`)

// WordCount is the number of occurrences of a word.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountWords counts the words of texts, split on spaces, stripped of non-word
// characters and lower-cased, by decreasing count then alphabetically.
// Items with no word character left are not counted.
func CountWords(texts []string) []WordCount {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, item := range strings.Split(text, " ") {
			if w := strings.ToLower(nonWordRE.ReplaceAllString(item, "")); w != "" {
				counts[w]++
			}
		}
	}
	words := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	return words
}
