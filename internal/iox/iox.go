// Package iox carries asttreectl's filesystem helpers: atomic writes and
// glob expansion, adapted from termfx-morfx's internal/util helpers of the
// same name.
package iox

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// WriteFileAtomic writes data to path by writing to a sibling temp file,
// fsyncing, then renaming over the destination — so a crash mid-write
// never leaves a truncated file at path.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()
	defer func() { _ = tmp.Close() }()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// RaceDetected reports whether a file changed on disk between two stats
// taken around a read-modify-write cycle, checking both mtime and size
// since some filesystems carry low-resolution timestamps.
func RaceDetected(before, after os.FileInfo) bool {
	if before == nil || after == nil {
		return false
	}
	return !before.ModTime().Equal(after.ModTime()) || before.Size() != after.Size()
}

// ExpandGlobs resolves each entry of files against cwd's filesystem using
// doublestar's "**" glob syntax, passing non-pattern entries through
// unchanged (including "-" for stdin).
func ExpandGlobs(files []string) ([]string, error) {
	var out []string
	for _, f := range files {
		if f == "-" {
			out = append(out, f)
			continue
		}
		matches, err := doublestar.FilepathGlob(f)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			out = append(out, f)
			continue
		}
		out = append(out, matches...)
	}
	return out, nil
}
