package course

// chapterState is the accumulator of the chapter fold. open indexes the
// chapter currently receiving lessons, or -1 before the first boundary.
type chapterState struct {
	chapters []Chapter
	open     int
}

// chapterRow is the projection of one row the fold needs.
type chapterRow struct {
	lessonIndex  int
	lessonNumber string
	// chapter is nil when the row has no chapter number after forward-fill.
	chapter *int
	// name is the chapter name cell; absent leaves the chapter unnamed.
	name Value
}

func newChapterState() chapterState {
	return chapterState{open: -1}
}

// step applies one row to the state. A chapter opens when the row's chapter
// number differs from the open chapter; rows without a chapter number attach
// to the open chapter, if any.
func (s chapterState) step(r chapterRow) chapterState {
	if r.chapter != nil && (s.open < 0 || s.chapters[s.open].Number != *r.chapter) {
		chapters := make([]Chapter, len(s.chapters), len(s.chapters)+1)
		copy(chapters, s.chapters)
		s = chapterState{
			chapters: append(chapters, Chapter{
				Number:      *r.chapter,
				Name:        r.name.Text,
				LessonStart: r.lessonIndex,
			}),
			open: len(chapters),
		}
	}
	if s.open < 0 {
		return s
	}

	chapters := make([]Chapter, len(s.chapters))
	copy(chapters, s.chapters)
	current := chapters[s.open]
	current.Lessons = append(append([]string(nil), current.Lessons...), r.lessonNumber)
	chapters[s.open] = current
	return chapterState{chapters: chapters, open: s.open}
}

// chapterFold folds rows into chapters in a single pass.
func chapterFold(rows []chapterRow) []Chapter {
	state := newChapterState()
	for _, r := range rows {
		state = state.step(r)
	}
	if state.chapters == nil {
		return []Chapter{}
	}
	return state.chapters
}
