package apperrors

import (
	"errors"
	"io/fs"
)

// TranslateStoreReadError converts a filesystem read failure into a typed store error.
// Returns nil if err is nil. The path is kept as internal detail only.
func TranslateStoreReadError(path string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return New(CodeStoreMissing, ErrStoreMissing.Message).WithInternal("path=%s", path).Wrap(err)
	}
	return New(CodeStoreRead, ErrStoreRead.Message).WithInternal("path=%s", path).Wrap(err)
}

// StoreDecode wraps a deserialization failure.
func StoreDecode(path string, err error) error {
	return New(CodeStoreDecode, ErrStoreDecode.Message).WithInternal("path=%s", path).Wrap(err)
}

// StoreWrite wraps a serialization or filesystem write failure with the step that failed.
func StoreWrite(step, path string, err error) error {
	return New(CodeStoreWrite, ErrStoreWrite.Message).WithInternal("%s path=%s", step, path).Wrap(err)
}
