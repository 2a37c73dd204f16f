package charts

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/amishk599/jobinsight/internal/model"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']*`)

func wordCloudChart(jobs []model.EnrichedJob, opts Options) (Chart, string) {
	c := Chart{
		ID:    IDWordCloud,
		Kind:  KindWordCloud,
		Title: "Job Description Word Cloud",
	}
	var texts []string
	for _, j := range jobs {
		if strings.TrimSpace(j.Description) != "" {
			texts = append(texts, j.Description)
		}
	}
	if len(texts) == 0 {
		return c, "no description text"
	}

	c.Points = topN(WordFrequencies(strings.Join(texts, " "), opts.Stopwords), opts.CloudWords)
	if len(c.Points) == 0 {
		return c, "no words left after stop words"
	}
	return c, ""
}

// WordFrequencies counts lowercase words in text, dropping stop words, purely
// numeric tokens and a trailing "'s". A plural is folded into its singular when
// both occur.
func WordFrequencies(text string, stopwords map[string]bool) map[string]int {
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		word = strings.TrimSuffix(word, "'s")
		word = strings.Trim(word, "'")
		if word == "" || stopwords[word] || isNumeric(word) {
			continue
		}
		counts[word]++
	}

	for word, n := range counts {
		if !strings.HasSuffix(word, "s") || strings.HasSuffix(word, "ss") {
			continue
		}
		singular := strings.TrimSuffix(word, "s")
		if _, ok := counts[singular]; ok {
			counts[singular] += n
			delete(counts, word)
		}
	}
	return counts
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
