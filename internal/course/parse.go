package course

import (
	"fmt"

	"contentgen/internal/services"
	"contentgen/internal/source"
)

// Parse validates table and builds the course model.
//
// Failures: a *services.MissingColumnsError when required headers are
// absent, services.ErrMalformedSource for non-numeric lesson, order or
// chapter cells, and services.ErrValidation when no row names the course.
// Everything else the sheet may get wrong is left to Lint.
func Parse(table *source.Table) (*Course, error) {
	if table == nil {
		return nil, services.Wrap(services.ErrMalformedSource, "parse", "", "no table", nil)
	}
	if err := ValidateColumns(table); err != nil {
		return nil, err
	}

	rows := cleanRows(table)

	subject := ""
	for _, r := range rows {
		if v := r.get(ColumnSubject); v.Present {
			subject = v.Text
			break
		}
	}
	if subject == "" {
		return nil, services.Wrap(services.ErrValidation, "parse", ColumnSubject, "no row names the course", nil)
	}

	lessons := make([]Lesson, 0, len(rows))
	folded := make([]chapterRow, 0, len(rows))
	named := table.HasColumn(ColumnChapterName)
	for i, r := range rows {
		// Blank rows were dropped but still count; the header is sheet row 1.
		position := table.Position(i)
		sheetRow := position + 2

		number, err := parseOrdinal(r.get(ColumnLessonNumber), sheetRow, ColumnLessonNumber)
		if err != nil {
			return nil, err
		}
		order, err := parseOrdinal(r.get(ColumnOrder), sheetRow, ColumnOrder)
		if err != nil {
			return nil, err
		}
		chapter, err := parseOrdinal(r.get(ColumnChapter), sheetRow, ColumnChapter)
		if err != nil {
			return nil, err
		}

		index := position + 1
		if number != nil {
			index = *number
		}
		lesson := Lesson{
			Index:       index,
			Number:      zeroPad(index),
			Title:       r.get(ColumnLessonTitle).Text,
			VideoURL:    NormalizeURL(r.get(ColumnVideoURL).Ptr()),
			DownloadURL: NormalizeURL(r.get(ColumnDownloadURL).Ptr()),
			Order:       order,
		}
		lessons = append(lessons, lesson)
		name := r.get(ColumnChapterName)
		if !named && chapter != nil {
			name = Present(fmt.Sprintf("Part.%d", *chapter))
		}
		folded = append(folded, chapterRow{
			lessonIndex:  lesson.Index,
			lessonNumber: lesson.Number,
			chapter:      chapter,
			name:         name,
		})
	}

	code := ""
	if len(lessons) > 0 && lessons[0].VideoURL != nil {
		code = ExtractCourseCode(*lessons[0].VideoURL)
	}

	return &Course{
		CourseCode:   code,
		Subject:      subject,
		Chapters:     chapterFold(folded),
		Lessons:      lessons,
		TotalLessons: len(lessons),
	}, nil
}
