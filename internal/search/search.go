// Package search finds the lines of a text that contain a query.
package search

import "strings"

// Search returns every line of content that contains query, in the order
// the lines appear. When caseSensitive is false both the line and the
// query are lowercased before comparing. An empty query matches every
// line; empty content yields no lines.
func Search(query, content string, caseSensitive bool) []Line {
	var results []Line
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	number := 0
	for raw := range strings.Lines(content) {
		line := trimEOL(raw)
		if contains(line, query, caseSensitive) {
			results = append(results, Line{Number: number, Content: line})
		}
		number++
	}
	return results
}

func contains(line, query string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(line, query)
	}
	return strings.Contains(strings.ToLower(line), query)
}

// trimEOL strips the "\n" or "\r\n" terminator strings.Lines leaves on a line.
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
