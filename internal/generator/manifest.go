package generator

import (
	"fmt"
	"strconv"

	"contentgen/internal/course"
)

type subjectsFile struct {
	Subjects []subjectEntry `json:"subjects"`
}

type subjectEntry struct {
	Title string   `json:"title"`
	Lists []string `json:"lists"`
}

// buildSubjects lists one entry per lesson in lesson order.
func buildSubjects(c *course.Course) subjectsFile {
	entries := make([]subjectEntry, 0, len(c.Lessons))
	for _, lesson := range c.Lessons {
		prefix := strconv.Itoa(lesson.Index)
		if lesson.Order != nil {
			prefix = strconv.Itoa(*lesson.Order)
		}
		entries = append(entries, subjectEntry{
			Title: fmt.Sprintf("%s차 %s", prefix, lesson.Title),
			Lists: []string{fmt.Sprintf("%s %s", lesson.Number, lesson.Title)},
		})
	}
	return subjectsFile{Subjects: entries}
}
