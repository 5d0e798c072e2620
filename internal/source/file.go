package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"
)

// FileFlags encodes metadata about how a file's content was loaded.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures the content of a single input, normalized for processing.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// NewVirtual wraps in-memory content (stdin, tests) as a File.
func NewVirtual(path string, content []byte) *File {
	return newFile(path, content, FileVirtual)
}

// Load reads a file from disk and normalizes it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFile(normalizePath(path), data, 0), nil
}

func newFile(path string, content []byte, flags FileFlags) *File {
	if trimmed, had := removeBOM(content); had {
		content = trimmed
		flags |= FileHadBOM
	}
	if normalized, changed := normalizeCRLF(content); changed {
		content = normalized
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    path,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
