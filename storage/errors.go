package storage

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by index-addressed MemoryStore operations.
var ErrIndexOutOfRange = errors.New("store: index out of range")

// IngestionError reports a failure that aborts loading the input file.
// Row is the 1-based data row (header excluded); 0 means the file itself failed.
type IngestionError struct {
	Path string
	Row  int
	Err  error
}

func (e *IngestionError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("ingest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("ingest %s: row %d: %v", e.Path, e.Row, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}
