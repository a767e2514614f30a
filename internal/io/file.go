package ioutils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/spotify-analysis/internal/model"
)

// reportIndent matches the four-space indentation of the published reports.
const reportIndent = "    "

// File is one output file and its complete contents.
type File struct {
	Path string
	Data []byte
}

// EncodeReport renders the report as indented, human-readable JSON.
// Non-ASCII and HTML characters are written literally.
func EncodeReport(report *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", reportIndent)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CommitFiles writes all files or none of them.
//
// Each file is first written to a temporary file in its destination
// directory. Only when every temporary file is complete are they renamed
// into place. On failure every temporary and already renamed file is
// removed, so a failed commit leaves no output behind.
//
// Example:
//
//	err := CommitFiles(ctx, File{Path: "out/report.json", Data: data})
func CommitFiles(ctx context.Context, files ...File) (err error) {
	temps := make([]string, 0, len(files))
	defer func() {
		if err != nil {
			for _, tmp := range temps {
				os.Remove(tmp)
			}
		}
	}()

	for _, f := range files {
		tmp, err := writeTemp(f)
		if err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		temps = append(temps, tmp)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i, f := range files {
		if err := os.Rename(temps[i], f.Path); err != nil {
			var errs []error
			errs = append(errs, fmt.Errorf("commit %s: %w", f.Path, err))
			for _, done := range files[:i] {
				if rmErr := os.Remove(done.Path); rmErr != nil {
					errs = append(errs, rmErr)
				}
			}
			return errors.Join(errs...)
		}
	}

	return nil
}

func writeTemp(f File) (string, error) {
	dir := filepath.Dir(f.Path)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
