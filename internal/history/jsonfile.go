package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"contentgen/internal/fileutil"
)

// fileTimeLayout yields names like 251119_1007.
const fileTimeLayout = "060102_1504"

// maxFileSuffix bounds the collision search for runs within the same minute.
const maxFileSuffix = 1000

// WriteFile stores rec as <dir>/YYMMDD_HHMM.json using rec.GeneratedAt in
// local time. Runs landing in the same minute get _2, _3, ... suffixes
// instead of overwriting each other. The chosen path is returned.
func WriteFile(dir string, rec *Record) (string, error) {
	if rec == nil {
		return "", errors.New("history record is nil")
	}
	if err := fileutil.EnsureDir(dir); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("encode history record: %w", err)
	}

	base := rec.GeneratedAt.Local().Format(fileTimeLayout)
	for n := 1; n <= maxFileSuffix; n++ {
		name := base + ".json"
		if n > 1 {
			name = fmt.Sprintf("%s_%d.json", base, n)
		}
		path := filepath.Join(dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create history file: %w", err)
		}
		if _, err := file.Write(buf.Bytes()); err != nil {
			_ = file.Close()
			return "", fmt.Errorf("write history file: %w", err)
		}
		if err := file.Close(); err != nil {
			return "", fmt.Errorf("close history file: %w", err)
		}
		if err := fileutil.Chmod(path, 0o644); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("history file %s: too many runs in one minute", base)
}
