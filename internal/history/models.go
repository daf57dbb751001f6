package history

import "time"

// Status is the outcome of one generation run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusDryRun    Status = "dry_run"
)

// Record is one course generation attempt.
type Record struct {
	ID           int64          `json:"-"`
	RunID        string         `json:"run_id"`
	GeneratedAt  time.Time      `json:"generated_at"`
	CourseCode   string         `json:"course_code"`
	Subject      string         `json:"subject"`
	TotalLessons int            `json:"total_lessons"`
	Chapters     int            `json:"chapters"`
	Template     string         `json:"template"`
	Input        string         `json:"input"`
	Sheet        string         `json:"sheet,omitempty"`
	OutputDir    string         `json:"output_dir"`
	Status       Status         `json:"status"`
	Error        string         `json:"error"`
	ErrorKind    string         `json:"error_kind,omitempty"`
	Lessons      []LessonRecord `json:"lessons"`
	// HistoryFile is the JSON file written for this record, if any.
	HistoryFile string `json:"-"`
}

// LessonRecord is the per-lesson detail kept in history.
type LessonRecord struct {
	Number      string  `json:"number"`
	Title       string  `json:"title"`
	VideoURL    *string `json:"video_url"`
	HasDownload bool    `json:"has_download"`
	DownloadURL string  `json:"download_url"`
}
