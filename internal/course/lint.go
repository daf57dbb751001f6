package course

import (
	"fmt"
	"net/url"
)

// Warning kinds reported by Lint.
const (
	WarnDuplicateLesson   = "duplicate_lesson"
	WarnChapterOrder      = "chapter_order"
	WarnMalformedURL      = "malformed_url"
	WarnMissingCourseCode = "missing_course_code"
)

// Warning describes input the parser accepted but which likely produces a
// surprising tree.
type Warning struct {
	Kind    string
	Lesson  string
	Message string
}

func (w Warning) String() string {
	if w.Lesson == "" {
		return w.Message
	}
	return fmt.Sprintf("lesson %s: %s", w.Lesson, w.Message)
}

// Lint inspects a parsed course for duplicate lesson numbers, chapter numbers
// that do not increase, URLs without a host, and an underived course code.
func Lint(c *Course) []Warning {
	if c == nil {
		return nil
	}
	var warnings []Warning

	if c.CourseCode == "" {
		warnings = append(warnings, Warning{
			Kind:    WarnMissingCourseCode,
			Message: "course code could not be derived from the first video URL",
		})
	}

	seen := make(map[string]int, len(c.Lessons))
	for _, lesson := range c.Lessons {
		seen[lesson.Number]++
		if seen[lesson.Number] == 2 {
			warnings = append(warnings, Warning{
				Kind:    WarnDuplicateLesson,
				Lesson:  lesson.Number,
				Message: "lesson number appears more than once; later rows overwrite earlier output",
			})
		}
		for _, link := range []struct {
			label string
			value *string
		}{
			{"video URL", lesson.VideoURL},
			{"download URL", lesson.DownloadURL},
		} {
			if link.value == nil || validURL(*link.value) {
				continue
			}
			warnings = append(warnings, Warning{
				Kind:    WarnMalformedURL,
				Lesson:  lesson.Number,
				Message: fmt.Sprintf("%s %q has no host", link.label, *link.value),
			})
		}
	}

	for i := 1; i < len(c.Chapters); i++ {
		prev, cur := c.Chapters[i-1], c.Chapters[i]
		if cur.Number <= prev.Number {
			warnings = append(warnings, Warning{
				Kind:    WarnChapterOrder,
				Lesson:  zeroPad(cur.LessonStart),
				Message: fmt.Sprintf("chapter %d follows chapter %d", cur.Number, prev.Number),
			})
		}
	}
	return warnings
}

func validURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
