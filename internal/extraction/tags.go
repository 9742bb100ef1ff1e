package extraction

import "strings"

// InferTags maps a segment to topical tags via substring keyword lookup,
// in table order. Returns nil (absent) rather than an empty set when
// nothing matched, so "no tags" stays distinguishable from "unknown".
func InferTags(segment string) []string {
	t := strings.ToLower(segment)

	var tags []string
	for _, entry := range tagTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(t, keyword) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}
