package course

import (
	"reflect"
	"testing"
)

func intp(v int) *int { return &v }

func TestChapterFoldRuns(t *testing.T) {
	// Chapter numbers 1,1,2,2,1: three maximal runs, never merged.
	numbers := []*int{intp(1), intp(1), intp(2), intp(2), intp(1)}
	rows := make([]chapterRow, len(numbers))
	for i, n := range numbers {
		rows[i] = chapterRow{lessonIndex: i + 1, lessonNumber: zeroPad(i + 1), chapter: n, name: Present("c")}
	}

	got := chapterFold(rows)
	if len(got) != 3 {
		t.Fatalf("chapters = %d, want 3", len(got))
	}
	starts := []int{got[0].LessonStart, got[1].LessonStart, got[2].LessonStart}
	if !reflect.DeepEqual(starts, []int{1, 3, 5}) {
		t.Fatalf("lesson starts = %v", starts)
	}
	if !reflect.DeepEqual(got[0].Lessons, []string{"01", "02"}) || !reflect.DeepEqual(got[2].Lessons, []string{"05"}) {
		t.Fatalf("lessons = %v / %v", got[0].Lessons, got[2].Lessons)
	}
}

func TestChapterFoldLeadingRowsUnattached(t *testing.T) {
	rows := []chapterRow{
		{lessonIndex: 1, lessonNumber: "01"},
		{lessonIndex: 2, lessonNumber: "02", chapter: intp(1)},
		{lessonIndex: 3, lessonNumber: "03"},
	}
	got := chapterFold(rows)
	if len(got) != 1 {
		t.Fatalf("chapters = %d, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Lessons, []string{"02", "03"}) {
		t.Fatalf("lessons = %v", got[0].Lessons)
	}
	if got[0].LessonStart != 2 {
		t.Fatalf("lesson start = %d", got[0].LessonStart)
	}
}

func TestChapterFoldStepIsPure(t *testing.T) {
	base := newChapterState().step(chapterRow{lessonIndex: 1, lessonNumber: "01", chapter: intp(1)})
	_ = base.step(chapterRow{lessonIndex: 2, lessonNumber: "02", chapter: intp(1)})
	_ = base.step(chapterRow{lessonIndex: 2, lessonNumber: "02", chapter: intp(2)})

	if len(base.chapters) != 1 || !reflect.DeepEqual(base.chapters[0].Lessons, []string{"01"}) {
		t.Fatalf("base state mutated: %#v", base.chapters)
	}
}

func TestChapterFoldEmpty(t *testing.T) {
	if got := chapterFold(nil); got == nil || len(got) != 0 {
		t.Fatalf("chapterFold(nil) = %#v", got)
	}
}
