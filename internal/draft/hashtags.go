package draft

import (
	"strings"
)

const (
	maxTopicTags = 4
	maxTags      = maxTopicTags + 2
)

var alwaysTags = []string{"#linkedin", "#growth"}

// Hashtags derives up to four tags from the topic and appends the fixed
// tags, keeping at most six unique entries in first-seen order.
func Hashtags(topic string) []string {
	words := strings.Fields(stripTopic(topic))
	words = dedupe(words)
	if len(words) > maxTopicTags {
		words = words[:maxTopicTags]
	}

	tags := make([]string, 0, len(words)+len(alwaysTags))
	for _, w := range words {
		tags = append(tags, "#"+w)
	}
	tags = dedupe(append(tags, alwaysTags...))
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// AppendHashtags adds the topic's hashtag line as a trailing block.
func AppendHashtags(text, topic string) string {
	return text + "\n\n" + strings.Join(Hashtags(topic), " ")
}

// stripTopic lower-cases s and keeps only ASCII letters, digits and whitespace.
func stripTopic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
