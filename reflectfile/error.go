package reflectfile

import (
	"errors"
	"fmt"
)

// ErrFileAccess matches every FileAccessError with errors.Is
var ErrFileAccess = errors.New("file access error")

const (
	reasonMissing    = "does not exist"
	reasonNotFile    = "is not a file"
	reasonUnreadable = "could not be read"
)

// FileAccessError is returned when the file to reflect does not exist or cannot be read
type FileAccessError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("file %q %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("file %q %s: %v", e.Path, e.Reason, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}
