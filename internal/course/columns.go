package course

import (
	"contentgen/internal/services"
	"contentgen/internal/source"
)

// Column headers recognized in a course sheet.
const (
	ColumnSubject      = "과정명"
	ColumnOrder        = "차시"
	ColumnChapter      = "챕터구분"
	ColumnChapterName  = "챕터명"
	ColumnLessonNumber = "차시번호"
	ColumnLessonTitle  = "차시명"
	ColumnVideoURL     = "강의영상(mp4) 링크"
	ColumnDownloadURL  = "다운로드(zip) 링크"
)

// RequiredColumns lists the headers every sheet must carry, in report order.
var RequiredColumns = []string{
	ColumnSubject,
	ColumnLessonNumber,
	ColumnLessonTitle,
	ColumnVideoURL,
}

// ValidateColumns returns a *services.MissingColumnsError naming every
// required column absent from the table header.
func ValidateColumns(table *source.Table) error {
	var missing []string
	for _, name := range RequiredColumns {
		if !table.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &services.MissingColumnsError{Columns: missing}
	}
	return nil
}
