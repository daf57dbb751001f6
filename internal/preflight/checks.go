package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"contentgen/internal/course"
	"contentgen/internal/history"
	"contentgen/internal/services"
	"contentgen/internal/source"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCreatableDirectory passes when path is an accessible directory, or
// when it is missing and its nearest existing ancestor is writable.
func CheckCreatableDirectory(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return CheckDirectoryAccess(name, path)
	}

	ancestor := filepath.Dir(path)
	for {
		info, err := os.Stat(ancestor)
		if err == nil {
			if !info.IsDir() {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s is not a directory)", path, ancestor)}
			}
			break
		}
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
		ancestor = parent
	}
	if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckHistoryDB verifies the history database opens with the expected schema.
func CheckHistoryDB(path string) Result {
	const name = "History database"

	store, err := history.Open(path)
	if err != nil {
		if errors.Is(err, history.ErrSchemaMismatch) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: schema mismatch)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckInput loads location and verifies its header carries the required columns.
func CheckInput(ctx context.Context, location string, opts source.Options) Result {
	const name = "Input sheet"

	table, err := source.Load(ctx, location, opts)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%s: %v)", location, services.Kind(err), err)}
	}
	if err := course.ValidateColumns(table); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%v)", location, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d rows)", location, table.Len())}
}
