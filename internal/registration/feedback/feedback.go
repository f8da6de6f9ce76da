// Package feedback builds and checks the JSON feedback bodies returned by the registration service.
package feedback

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	contract "regsuite/contracts/registration"
	dErrors "regsuite/pkg/domain-errors"
)

// Golden returns the exact body the service sends when it rejects a
// registration for reason, including the trailing newline.
func Golden(reason string) string {
	return encode(contract.FailurePrefix + reason)
}

// Success returns the exact body sent alongside a 201.
func Success() string {
	return encode(contract.SuccessFeedback)
}

// Encode renders any feedback message as a service body.
func Encode(message string) string {
	return encode(message)
}

func encode(message string) string {
	data, err := json.Marshal(contract.FeedbackResponse{Feedback: message})
	if err != nil {
		// a struct with a single string field always marshals
		panic(err)
	}
	return string(data) + "\n"
}

// Parse decodes a feedback body.
func Parse(body []byte) (contract.FeedbackResponse, error) {
	var resp contract.FeedbackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return resp, dErrors.Wrap(err, dErrors.CodeBadResponse, "response is not a feedback body")
	}
	return resp, nil
}

// Reason extracts the rejection reason from a feedback body.
// ok is false when the body is not a rejection.
func Reason(body []byte) (reason string, ok bool) {
	resp, err := Parse(body)
	if err != nil {
		return "", false
	}
	return strings.CutPrefix(resp.Feedback, contract.FailurePrefix)
}

// IsKnownReason reports whether reason is in the observed catalogue.
func IsKnownReason(reason string) bool {
	for _, r := range contract.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// MismatchError describes a body that differs from its golden string.
type MismatchError struct {
	Want string
	Got  string
	Diff string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("feedback mismatch\n  want: %s\n   got: %s\n  diff: %s",
		strconv.Quote(e.Want), strconv.Quote(e.Got), e.Diff)
}

// CompareGolden checks got byte-for-byte against want.
func CompareGolden(want, got string) error {
	if want == got {
		return nil
	}
	return &MismatchError{Want: want, Got: got, Diff: Diff(want, got)}
}

// Diff renders a character-level diff: deletions as [-x-], insertions as {+x+}.
func Diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var out strings.Builder
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\n", `\n`)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			out.WriteString(text)
		case diffmatchpatch.DiffDelete:
			out.WriteString("[-" + text + "-]")
		case diffmatchpatch.DiffInsert:
			out.WriteString("{+" + text + "+}")
		}
	}
	return out.String()
}
