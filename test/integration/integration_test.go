//go:build integration

// Package integration runs the feature files against the real router backed by
// in-memory sqlite, miniredis and a controllable clock.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/habit-tracker/backend/test/integration/steps"
)

// TestFeatures runs all BDD feature tests.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}

	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}
	// GODOG_FEATURE narrows the run to one area, e.g. GODOG_FEATURE=habits
	if feature := os.Getenv("GODOG_FEATURE"); feature != "" {
		opts.Paths = []string{"features/" + feature + ".feature"}
	}

	suite := godog.TestSuite{
		Name:                 "habit-tracker-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
