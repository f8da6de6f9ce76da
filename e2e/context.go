package e2e

import (
	"context"
	"time"

	"regsuite/internal/registration/client"
	"regsuite/internal/registration/models"
	"regsuite/pkg/domain"
)

// TestContext holds state between test steps of one scenario.
type TestContext struct {
	Client       *client.Client
	Record       models.Record
	LastResponse *client.Response
	LastError    error
	Now          func() time.Time

	// fake is set when the suite runs against the in-process service.
	fake bool
}

// NewTestContext creates a test context holding a fresh baseline record.
func NewTestContext(c *client.Client, fake bool) *TestContext {
	return &TestContext{
		Client: c,
		Record: models.Baseline(),
		Now:    time.Now,
		fake:   fake,
	}
}

// Reset replaces the record with a fresh baseline and forgets the last call.
func (tc *TestContext) Reset() {
	tc.Record = models.Baseline()
	tc.LastResponse = nil
	tc.LastError = nil
}

// Submit posts the current record.
func (tc *TestContext) Submit(ctx context.Context) error {
	resp, err := tc.Client.Submit(ctx, tc.Record)
	return tc.store(resp, err)
}

// Lookup fetches the registration for id.
func (tc *TestContext) Lookup(ctx context.Context, id domain.CitizenID) error {
	resp, err := tc.Client.Lookup(ctx, id)
	return tc.store(resp, err)
}

// Remove deletes the registration for id. Malformed IDs are refused locally.
func (tc *TestContext) Remove(ctx context.Context, id domain.CitizenID) error {
	resp, err := tc.Client.Remove(ctx, id)
	return tc.store(resp, err)
}

// Cleanup issues a best-effort delete of the scenario's record and clears it.
// Records whose ID would make the delete unsafe are skipped.
func (tc *TestContext) Cleanup(ctx context.Context) error {
	defer tc.Record.Clear()

	id := tc.Record.ID()
	if !id.IsNominal() {
		return nil
	}
	_, err := tc.Client.Remove(ctx, id)
	return err
}

// Healthy probes the fake service. Remote services have no documented health route.
func (tc *TestContext) Healthy(ctx context.Context) error {
	if !tc.fake {
		return nil
	}
	return tc.Client.Health(ctx)
}

func (tc *TestContext) store(resp *client.Response, err error) error {
	tc.LastResponse = resp
	tc.LastError = err
	return err
}

// Getter methods for step package interfaces

func (tc *TestContext) GetRecord() *models.Record {
	return &tc.Record
}

func (tc *TestContext) GetNow() time.Time {
	return tc.Now()
}

func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

func (tc *TestContext) GetLastResponseBody() []byte {
	if tc.LastResponse == nil {
		return nil
	}
	return tc.LastResponse.Body
}

func (tc *TestContext) GetLastResponseText() string {
	if tc.LastResponse == nil {
		return ""
	}
	return tc.LastResponse.Text()
}

func (tc *TestContext) GetLastError() error {
	return tc.LastError
}
