package generator

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"contentgen/internal/course"
	"contentgen/internal/services"
	"contentgen/internal/textutil"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644

	subjectsFileName = "subjects.json"
	indexFileName    = "index.html"
	dataFilePath     = "assets/data/data.json"
)

// Options controls a generation run.
type Options struct {
	OutputRoot string
	Variant    Variant
	DryRun     bool
	// CourseCode overrides the code derived from the video URLs.
	CourseCode string
}

// EntryKind distinguishes directories from files in a plan.
type EntryKind int

const (
	EntryDir EntryKind = iota
	EntryFile
)

// Entry is one directory or file the plan materializes. Rel is slash
// separated and relative to the course directory; "." is the course
// directory itself.
type Entry struct {
	Kind    EntryKind
	Rel     string
	Content []byte
	Mode    fs.FileMode
}

// Plan is the complete, ordered description of a course tree.
type Plan struct {
	CourseCode string
	Variant    Variant
	CourseDir  string
	Entries    []Entry
}

// Path returns the absolute location of an entry.
func (p *Plan) Path(e Entry) string {
	return filepath.Join(p.CourseDir, filepath.FromSlash(e.Rel))
}

// BuildPlan computes every entry for a course without touching the
// filesystem.
func BuildPlan(c *course.Course, opts Options) (*Plan, error) {
	if c == nil {
		return nil, services.Wrap(services.ErrValidation, "plan", "", "course is nil", nil)
	}
	code := strings.TrimSpace(opts.CourseCode)
	if code == "" {
		code = c.CourseCode
	}
	dirName := textutil.SanitizePathSegment(code)
	if dirName == "" {
		return nil, services.Wrap(services.ErrValidation, "plan", "course code", "could not be derived from the video URLs; pass --course-code", nil)
	}

	variant := opts.Variant
	if variant == "" {
		variant = VariantCT2022
	}
	variant = ResolveVariant(variant, code)

	root := opts.OutputRoot
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	plan := &Plan{
		CourseCode: code,
		Variant:    variant,
		CourseDir:  filepath.Join(root, dirName),
	}
	plan.addDir(".")

	subjects, err := marshalTabbed(buildSubjects(c))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "plan", "encode", subjectsFileName, err)
	}
	plan.addFile(subjectsFileName, subjects)

	html := []byte(Render(variant))
	for _, lesson := range c.Lessons {
		data, err := marshalTabbed(buildLessonData(c, lesson, variant))
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "plan", "encode", fmt.Sprintf("lesson %s data", lesson.Number), err)
		}
		plan.addDir(lesson.Number)
		plan.addDir(path.Join(lesson.Number, "assets"))
		plan.addDir(path.Join(lesson.Number, path.Dir(dataFilePath)))
		plan.addFile(path.Join(lesson.Number, indexFileName), html)
		plan.addFile(path.Join(lesson.Number, dataFilePath), data)
	}
	return plan, nil
}

func (p *Plan) addDir(rel string) {
	p.Entries = append(p.Entries, Entry{Kind: EntryDir, Rel: rel, Mode: dirMode})
}

func (p *Plan) addFile(rel string, content []byte) {
	p.Entries = append(p.Entries, Entry{Kind: EntryFile, Rel: rel, Content: content, Mode: fileMode})
}

// Files returns the relative paths of the plan's files in write order.
func (p *Plan) Files() []string {
	var files []string
	for _, e := range p.Entries {
		if e.Kind == EntryFile {
			files = append(files, e.Rel)
		}
	}
	return files
}
