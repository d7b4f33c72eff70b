package source

// FileID uniquely identifies an expression buffer within a FileSet.
type FileID uint32

// File captures the content of a single expression buffer. Buffers are
// virtual: expressions arrive as CLI arguments, REPL lines, or lines of
// a batch file, never straight from disk.
type File struct {
	ID      FileID
	Name    string
	Content []byte
}
