// Package netutil holds small helpers for reading remote responses safely.
package netutil

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBodyLimit caps response bodies read by the registration client.
const DefaultBodyLimit int64 = 1 << 20

// LimitedReader wraps an io.Reader with a maximum size limit.
// It returns an error when the limit is exceeded.
type LimitedReader struct {
	R     io.Reader
	N     int64
	Limit int64
	read  int64
	eof   bool
}

// NewLimitedReader creates a new LimitedReader that will read at most limit bytes.
func NewLimitedReader(r io.Reader, limit int64) *LimitedReader {
	return &LimitedReader{
		R:     r,
		N:     limit,
		Limit: limit,
	}
}

// Read implements io.Reader with size limit enforcement.
func (l *LimitedReader) Read(p []byte) (n int, err error) {
	if l.eof {
		return 0, io.EOF
	}
	if l.N <= 0 {
		return 0, &SizeLimitExceededError{Limit: l.Limit, Read: l.read}
	}

	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}

	n, err = l.R.Read(p)
	l.N -= int64(n)
	l.read += int64(n)

	// at the limit: read until one byte or an error tells "exactly full" from "more pending"
	if l.N == 0 && err == nil {
		var buf [1]byte
		for {
			extra, extraErr := l.R.Read(buf[:])
			if extra > 0 {
				return n, &SizeLimitExceededError{Limit: l.Limit, Read: l.read + 1}
			}
			if extraErr == io.EOF {
				l.eof = true
				break
			}
			if extraErr != nil {
				return n, extraErr
			}
		}
	}

	return n, err
}

// BytesRead returns the number of bytes read so far.
func (l *LimitedReader) BytesRead() int64 {
	return l.read
}

// ReadAllLimited reads r to EOF or fails once more than limit bytes arrive.
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(NewLimitedReader(r, limit))
}

// SizeLimitExceededError is returned when the size limit is exceeded.
type SizeLimitExceededError struct {
	Limit int64
	Read  int64
}

func (e *SizeLimitExceededError) Error() string {
	return fmt.Sprintf("size limit exceeded: read %d bytes, limit is %d bytes", e.Read, e.Limit)
}

// IsSizeLimitExceededError returns true if the error is a SizeLimitExceededError.
func IsSizeLimitExceededError(err error) bool {
	var sizeLimitErr *SizeLimitExceededError
	return errors.As(err, &sizeLimitErr)
}
