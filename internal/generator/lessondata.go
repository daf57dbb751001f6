package generator

import "contentgen/internal/course"

const sectionTitle = "학습하기"

type lessonData struct {
	Subject  string   `json:"subject"`
	Index    int      `json:"index"`
	Section  int      `json:"section"`
	Sections []string `json:"sections"`
	Pages    []page   `json:"pages"`
	Guide    *string  `json:"guide,omitempty"`
}

type page struct {
	Path      string         `json:"path"`
	Section   int            `json:"section"`
	Title     string         `json:"title"`
	Component string         `json:"component"`
	Media     *string        `json:"media"`
	Data      map[string]any `json:"data"`
}

func buildLessonData(c *course.Course, lesson course.Lesson, variant Variant) lessonData {
	return lessonData{
		Subject:  c.Subject,
		Index:    lesson.Index,
		Section:  1,
		Sections: []string{sectionTitle},
		Pages: []page{{
			Path:      "/lecture",
			Section:   1,
			Title:     sectionTitle,
			Component: "lecture",
			Media:     lesson.VideoURL,
			Data:      map[string]any{},
		}},
		Guide: lessonGuide(c, lesson, variant),
	}
}

// lessonGuide returns the guide value for data.json, nil when the field is
// omitted. A lesson's own download URL always wins; without one, ct2022
// falls back to ResolveGuide and it2023 omits the field.
func lessonGuide(c *course.Course, lesson course.Lesson, variant Variant) *string {
	if lesson.DownloadURL != nil {
		guide := *lesson.DownloadURL
		return &guide
	}
	if variant != VariantCT2022 {
		return nil
	}
	guide := ResolveGuide(c, lesson.Index)
	return &guide
}

// ResolveGuide finds a shared download for a lesson without its own. The
// owning chapter is the last one whose LessonStart is at or before index;
// its first lesson's download URL is used when present. Otherwise the first
// download URL anywhere in the course is used, and failing that "".
func ResolveGuide(c *course.Course, index int) string {
	for i := len(c.Chapters) - 1; i >= 0; i-- {
		chapter := c.Chapters[i]
		if chapter.LessonStart > index {
			continue
		}
		if len(chapter.Lessons) > 0 {
			for _, lesson := range c.Lessons {
				if lesson.Number == chapter.Lessons[0] && lesson.DownloadURL != nil {
					return *lesson.DownloadURL
				}
			}
		}
		break
	}
	for _, lesson := range c.Lessons {
		if lesson.DownloadURL != nil {
			return *lesson.DownloadURL
		}
	}
	return ""
}
