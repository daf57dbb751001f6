package course

// Course is the parsed form of one course sheet.
type Course struct {
	// CourseCode is empty when it could not be derived from the video URLs.
	CourseCode   string
	Subject      string
	Chapters     []Chapter
	Lessons      []Lesson
	TotalLessons int
}

// Chapter groups consecutive lessons sharing a chapter number.
type Chapter struct {
	Number      int
	Name        string
	LessonStart int
	// Lessons holds the Number of each member lesson in row order.
	Lessons []string
}

// Lesson is one row of the sheet.
type Lesson struct {
	Index       int
	Number      string
	Title       string
	VideoURL    *string
	DownloadURL *string
	// Order is the optional ordinal used for manifest title prefixes.
	Order *int
}

// LessonByNumber returns the first lesson whose Number matches.
func (c *Course) LessonByNumber(number string) (Lesson, bool) {
	for _, lesson := range c.Lessons {
		if lesson.Number == number {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// Value is a cleaned cell. The zero Value is the absent marker, which is
// distinct from a present empty string.
type Value struct {
	Text    string
	Present bool
}

// Present wraps text as a present value.
func Present(text string) Value {
	return Value{Text: text, Present: true}
}

// Ptr returns the text as a pointer, nil when absent.
func (v Value) Ptr() *string {
	if !v.Present {
		return nil
	}
	text := v.Text
	return &text
}
