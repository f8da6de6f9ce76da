package registration

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"

	"regsuite/internal/registration/feedback"
	"regsuite/internal/registration/models"
	"regsuite/pkg/domain"
	dErrors "regsuite/pkg/domain-errors"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Reset()
	Submit(ctx context.Context) error
	Lookup(ctx context.Context, id domain.CitizenID) error
	Remove(ctx context.Context, id domain.CitizenID) error
	GetRecord() *models.Record
	GetNow() time.Time
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	GetLastResponseText() string
	GetLastError() error
}

// RegisterSteps registers registration-related step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &registrationSteps{tc: tc}

	// Record setup steps
	ctx.Step(`^a baseline citizen record$`, steps.baselineRecord)
	ctx.Step(`^the "([^"]*)" field is "([^"]*)"$`, steps.setField)
	ctx.Step(`^the "([^"]*)" field is missing$`, steps.unsetField)
	ctx.Step(`^the birth date is (\d+) years? ago$`, steps.birthDateYearsAgo)
	ctx.Step(`^the birth date is (\d+) years? from now$`, steps.birthDateYearsAhead)

	// Request steps
	ctx.Step(`^I submit the registration$`, steps.submit)
	ctx.Step(`^I look up the registered citizen$`, steps.lookupRegistered)
	ctx.Step(`^I look up the registered citizen ID truncated to (\d+) digits$`, steps.lookupTruncated)
	ctx.Step(`^I look up citizen ID "([^"]*)"$`, steps.lookupID)
	ctx.Step(`^I delete the registered citizen$`, steps.deleteRegistered)
	ctx.Step(`^I try to delete citizen ID "([^"]*)"$`, steps.tryDelete)

	// Assertion steps
	ctx.Step(`^the registration should be accepted$`, steps.shouldBeAccepted)
	ctx.Step(`^the registration should be rejected with "([^"]*)"$`, steps.shouldBeRejectedWith)
	ctx.Step(`^the feedback reason should be "([^"]*)"$`, steps.feedbackReasonShouldBe)
	ctx.Step(`^the response body should be exactly:$`, steps.bodyShouldBeExactly)
	ctx.Step(`^the delete should be refused as unsafe$`, steps.deleteShouldBeRefused)
}

type registrationSteps struct {
	tc TestContext
}

func (s *registrationSteps) baselineRecord(ctx context.Context) error {
	s.tc.Reset()
	return nil
}

func (s *registrationSteps) setField(ctx context.Context, field, value string) error {
	return s.tc.GetRecord().Set(field, value)
}

func (s *registrationSteps) unsetField(ctx context.Context, field string) error {
	return s.tc.GetRecord().Unset(field)
}

func (s *registrationSteps) birthDateYearsAgo(ctx context.Context, years int) error {
	s.tc.GetRecord().BirthDate = models.Some(domain.FormatDate(domain.YearsBefore(s.tc.GetNow(), years)))
	return nil
}

func (s *registrationSteps) birthDateYearsAhead(ctx context.Context, years int) error {
	return s.birthDateYearsAgo(ctx, -years)
}

func (s *registrationSteps) submit(ctx context.Context) error {
	return s.tc.Submit(ctx)
}

func (s *registrationSteps) lookupRegistered(ctx context.Context) error {
	return s.tc.Lookup(ctx, s.tc.GetRecord().ID())
}

func (s *registrationSteps) lookupTruncated(ctx context.Context, digits int) error {
	return s.tc.Lookup(ctx, s.tc.GetRecord().ID().Truncate(digits))
}

func (s *registrationSteps) lookupID(ctx context.Context, id string) error {
	return s.tc.Lookup(ctx, domain.CitizenID(id))
}

func (s *registrationSteps) deleteRegistered(ctx context.Context) error {
	return s.tc.Remove(ctx, s.tc.GetRecord().ID())
}

// tryDelete records a refusal instead of failing so the next step can assert on it.
func (s *registrationSteps) tryDelete(ctx context.Context, id string) error {
	err := s.tc.Remove(ctx, domain.CitizenID(id))
	if dErrors.HasCode(err, dErrors.CodeUnsafeOperation) {
		return nil
	}
	return err
}

func (s *registrationSteps) shouldBeAccepted(ctx context.Context) error {
	if err := s.tc.GetLastError(); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusCreated {
		return fmt.Errorf("expected status %d but got %d\nResponse: %s", http.StatusCreated, status, s.tc.GetLastResponseText())
	}
	return nil
}

func (s *registrationSteps) shouldBeRejectedWith(ctx context.Context, reason string) error {
	if !feedback.IsKnownReason(reason) {
		return fmt.Errorf("%q is not a known rejection reason", reason)
	}
	if err := s.tc.GetLastError(); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusOK {
		return fmt.Errorf("expected status %d but got %d\nResponse: %s", http.StatusOK, status, s.tc.GetLastResponseText())
	}
	return feedback.CompareGolden(feedback.Golden(reason), s.tc.GetLastResponseText())
}

func (s *registrationSteps) feedbackReasonShouldBe(ctx context.Context, want string) error {
	got, ok := feedback.Reason(s.tc.GetLastResponseBody())
	if !ok {
		return fmt.Errorf("response is not a rejection: %s", s.tc.GetLastResponseText())
	}
	if got != want {
		return fmt.Errorf("expected reason %q but got %q", want, got)
	}
	return nil
}

// bodyShouldBeExactly compares against the doc string plus the trailing newline
// the service writes after every JSON body.
func (s *registrationSteps) bodyShouldBeExactly(ctx context.Context, doc *godog.DocString) error {
	return feedback.CompareGolden(doc.Content+"\n", s.tc.GetLastResponseText())
}

func (s *registrationSteps) deleteShouldBeRefused(ctx context.Context) error {
	err := s.tc.GetLastError()
	if !dErrors.HasCode(err, dErrors.CodeUnsafeOperation) {
		return fmt.Errorf("expected an unsafe-operation refusal, got %v", err)
	}
	return nil
}
