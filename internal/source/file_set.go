package source

import (
	"fmt"

	"fortio.org/safecast"
)

// FileSet manages a collection of expression buffers so spans stay
// resolvable after the pipeline finishes.
type FileSet struct {
	files []File
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{files: make([]File, 0)}
}

// AddVirtual stores an in-memory buffer and returns its FileID.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Name:    name,
		Content: content,
	})
	return id
}

// Get returns the file for id, or nil if the id is unknown.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Len returns the number of buffers in the set.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Snippet returns the text covered by sp, or "" if the span does not
// resolve inside a known buffer.
func (fs *FileSet) Snippet(sp Span) string {
	f := fs.Get(sp.File)
	if f == nil || int(sp.End) > len(f.Content) || sp.Start > sp.End {
		return ""
	}
	return string(f.Content[sp.Start:sp.End])
}
