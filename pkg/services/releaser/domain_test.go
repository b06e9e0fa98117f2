package releaser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVersionBumpBranchName(t *testing.T) {

	t.Run("EmbedsUnixTimestampOfPassedTime", func(t *testing.T) {

		// act
		branchName := versionBumpBranchName(time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC))

		assert.Equal(t, "update-version-1715938200", branchName)
	})

	t.Run("ReturnsDifferentNamesForRunsStartedAtDifferentTimes", func(t *testing.T) {

		// act
		first := versionBumpBranchName(time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC))
		second := versionBumpBranchName(time.Date(2024, 5, 17, 9, 30, 1, 0, time.UTC))

		assert.NotEqual(t, first, second)
	})
}

func TestRun(t *testing.T) {

	t.Run("FailedStepReturnsEmptyStepForSuccessfulRun", func(t *testing.T) {

		run := Run{
			Results: []StepResult{
				{Step: StepAcquireSource},
				{Step: StepProvisionRuntime},
			},
		}

		// act
		failedStep := run.FailedStep()

		assert.False(t, run.Failed())
		assert.Equal(t, Step(""), failedStep)
	})

	t.Run("FailedStepReturnsStepTheRunStoppedAt", func(t *testing.T) {

		run := Run{
			Results: []StepResult{
				{Step: StepAcquireSource},
				{Step: StepProvisionRuntime, Err: errors.New("python3 not found")},
			},
		}

		// act
		failedStep := run.FailedStep()

		assert.True(t, run.Failed())
		assert.Equal(t, StepProvisionRuntime, failedStep)
	})

	t.Run("HasExecutedReturnsFalseForStepsAfterTheFailedOne", func(t *testing.T) {

		run := Run{
			Results: []StepResult{
				{Step: StepAcquireSource},
				{Step: StepProvisionRuntime, Err: errors.New("python3 not found")},
			},
		}

		// act
		executed := run.HasExecuted(StepProvisionPackager)

		assert.False(t, executed)
		assert.True(t, run.HasExecuted(StepProvisionRuntime))
	})
}
