package generator

import (
	"contentgen/internal/course"
)

// Report summarizes a generation run for the CLI and history.
type Report struct {
	CourseCode   string         `json:"course_code"`
	Subject      string         `json:"subject"`
	TotalLessons int            `json:"total_lessons"`
	Chapters     int            `json:"chapters"`
	Variant      Variant        `json:"template"`
	OutputDir    string         `json:"output_dir"`
	DryRun       bool           `json:"dry_run"`
	Lessons      []LessonReport `json:"lessons"`
	// Entries lists every planned path relative to OutputDir, directories
	// with a trailing slash.
	Entries []string `json:"entries"`
}

// LessonReport is the per-lesson slice of a Report.
type LessonReport struct {
	Number      string  `json:"number"`
	Title       string  `json:"title"`
	VideoURL    *string `json:"video_url"`
	HasDownload bool    `json:"has_download"`
	// Guide is the download URL the lesson effectively uses: its own, or the
	// chapter fallback. Empty when none resolves.
	Guide string `json:"download_url"`
}

func newReport(c *course.Course, plan *Plan, dryRun bool) *Report {
	lessons := make([]LessonReport, 0, len(c.Lessons))
	for _, lesson := range c.Lessons {
		guide := ""
		if lesson.DownloadURL != nil {
			guide = *lesson.DownloadURL
		} else {
			guide = ResolveGuide(c, lesson.Index)
		}
		lessons = append(lessons, LessonReport{
			Number:      lesson.Number,
			Title:       lesson.Title,
			VideoURL:    lesson.VideoURL,
			HasDownload: lesson.DownloadURL != nil,
			Guide:       guide,
		})
	}

	entries := make([]string, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		if e.Kind == EntryDir {
			if e.Rel == "." {
				continue
			}
			entries = append(entries, e.Rel+"/")
			continue
		}
		entries = append(entries, e.Rel)
	}

	return &Report{
		CourseCode:   plan.CourseCode,
		Subject:      c.Subject,
		TotalLessons: c.TotalLessons,
		Chapters:     len(c.Chapters),
		Variant:      plan.Variant,
		OutputDir:    plan.CourseDir,
		DryRun:       dryRun,
		Lessons:      lessons,
		Entries:      entries,
	}
}
