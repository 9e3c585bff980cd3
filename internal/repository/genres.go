package repository

import "strings"

// Genres are an ordered set of tag strings. MySQL has no array column type,
// so they are persisted as a single comma-joined string. The form choice
// lists contain no commas, which keeps the encoding unambiguous.

func encodeGenres(genres []string) string {
	clean := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g != "" {
			clean = append(clean, g)
		}
	}
	return strings.Join(clean, ",")
}

func decodeGenres(s string) []string {
	var genres []string
	for _, g := range strings.Split(s, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
