package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "regsuite/pkg/domain-errors"
)

func TestCitizenIDs(t *testing.T) {
	ids := CitizenIDs(3)
	assert.Equal(t, "1101400000000", ids[0].String())
	assert.Equal(t, "1101400000002", ids[2].String())
	for _, id := range ids {
		assert.True(t, id.IsNominal())
	}
	for _, id := range MalformedCitizenIDs {
		assert.False(t, id.IsNominal(), string(id))
	}
}

func TestRunConcurrent(t *testing.T) {
	res := RunConcurrent(8, func(idx int) error {
		switch idx % 4 {
		case 0:
			return nil
		case 1:
			return dErrors.New(dErrors.CodeUnsafeOperation, "refused")
		case 2:
			return dErrors.New(dErrors.CodeTimeout, "slow")
		default:
			return errors.New("boom")
		}
	})

	assert.Equal(t, int32(2), res.Successes)
	assert.Equal(t, int32(2), res.Refused)
	assert.Equal(t, int32(2), res.Timeouts)
	assert.Equal(t, int32(2), res.Errors)
	assert.Equal(t, int32(8), res.Total())
}
