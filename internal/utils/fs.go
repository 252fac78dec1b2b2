package utils

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/quantmind-br/appcache-go/internal/domain"
)

// OSFileSystem implements domain.FileSystem on top of the local disk.
type OSFileSystem struct{}

// NewOSFileSystem returns the local disk file system
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether path names an existing regular file or directory
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadBytes returns the undecoded content of path
func (OSFileSystem) ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewIOError("read", path, err)
	}
	return data, nil
}

// ReadText reads a text file and decodes it to UTF-8.
// A UTF-8 or UTF-16 byte order mark is honoured and stripped.
func (fs OSFileSystem) ReadText(path string) (string, error) {
	data, err := fs.ReadBytes(path)
	if err != nil {
		return "", err
	}
	text, err := DecodeText(data)
	if err != nil {
		return "", domain.NewIOError("read", path, err)
	}
	return text, nil
}

// WriteText replaces path with content. The content goes to a temporary
// file in the same directory first and is renamed over path, so a failed
// write never leaves a truncated target behind. An existing file keeps its
// permissions; a new one gets 0644.
func (OSFileSystem) WriteText(path, content string) error {
	if err := EnsureDir(path); err != nil {
		return domain.NewIOError("write", path, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domain.NewIOError("write", path, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewIOError("write", path, err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return domain.NewIOError("write", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return domain.NewIOError("write", path, err)
	}
	return nil
}

// DecodeText converts raw file bytes to a UTF-8 string, removing any BOM
func DecodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EnsureDir ensures the parent directory of path exists
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// RelativeSlash returns target relative to base using forward slashes.
// When target cannot be expressed relative to base it is returned cleaned.
func RelativeSlash(base, target string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(target))
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(target))
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(target))
	}
	return filepath.ToSlash(rel)
}

// JoinURL joins a base URL and a relative path with exactly one slash
func JoinURL(base, path string) string {
	if base == "" {
		return path
	}
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
