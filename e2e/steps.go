package e2e

import (
	"github.com/cucumber/godog"

	"regsuite/e2e/steps/common"
	"regsuite/e2e/steps/registration"
)

// RegisterSteps registers all step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	registration.RegisterSteps(ctx, tc)
}
