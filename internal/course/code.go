package course

import "strings"

// ExtractCourseCode derives the course code from a lesson video URL such as
// https://cdn.example.com/mov/2025/25ctvibec/25ctvibec_01.mp4. The first path
// segment made of exactly four ASCII digits is taken as a year marker and the
// segment after it is the code. Returns "" when no marker is found.
//
// This is a heuristic over the CDN's directory convention, not a URL parser.
func ExtractCourseCode(videoURL string) string {
	parts := strings.Split(videoURL, "/")
	for i, part := range parts {
		if !isYear(part) {
			continue
		}
		if i+1 < len(parts) {
			return parts[i+1]
		}
		return ""
	}
	return ""
}

func isYear(segment string) bool {
	if len(segment) != 4 {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
