package imagestore

import (
	"errors"
	"fmt"
)

var (
	ErrUnableToDownload = errors.New("unable to download image")
	ErrUnableToProcess  = errors.New("unable to process image")
)

// DownloadError reports a failed image request.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download image %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

func (e *DownloadError) Is(target error) bool {
	return target == ErrUnableToDownload
}

// ProcessError reports a downloaded image that could not be stored.
type ProcessError struct {
	URL string
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("store image %s: %v", e.URL, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func (e *ProcessError) Is(target error) bool {
	return target == ErrUnableToProcess
}
