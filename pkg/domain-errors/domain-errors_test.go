package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the error primitives the client returns for local failures.
//
// Justification: step definitions branch on these codes (unsafe deletes,
// transport failures), so "wrapped errors keep their code" must hold.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeTransport, Message: "connection refused"}
		s.Equal("connection refused", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeUnsafeOperation}
		s.Equal("unsafe_operation", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("dial tcp: connection refused")
		err := &Error{Code: CodeTransport, Message: "request failed", Err: inner}
		s.Equal(inner, err.Unwrap())
		s.Equal(inner, errors.Unwrap(err))
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeInvalidInput}
		s.Nil(err.Unwrap())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeTimeout, Message: "lookup timed out"}
		err2 := &Error{Code: CodeTimeout, Message: "submit timed out"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		s.False((&Error{Code: CodeTimeout}).Is(&Error{Code: CodeTransport}))
	})

	s.Run("does not match plain errors", func() {
		s.False((&Error{Code: CodeTimeout}).Is(errors.New("timeout")))
	})

	s.Run("works with errors.Is through fmt wrapping", func() {
		err := fmt.Errorf("submit: %w", New(CodeBadResponse, "body too large"))
		s.True(errors.Is(err, &Error{Code: CodeBadResponse}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves existing code", func() {
		inner := New(CodeUnsafeOperation, "refusing delete")
		wrapped := Wrap(inner, CodeInternal, "remove failed")
		s.True(HasCode(wrapped, CodeUnsafeOperation))
		s.Equal("remove failed", wrapped.Error())
	})

	s.Run("applies code to plain errors", func() {
		wrapped := Wrap(errors.New("eof"), CodeTransport, "read failed")
		s.True(HasCode(wrapped, CodeTransport))
	})

	s.Run("HasCode is false for nil and plain errors", func() {
		s.False(HasCode(nil, CodeTransport))
		s.False(HasCode(errors.New("x"), CodeTransport))
	})
}
