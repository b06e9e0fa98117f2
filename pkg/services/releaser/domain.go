package releaser

import (
	"fmt"
	"time"
)

// Step identifies one stage of the publish pipeline
type Step string

const (
	StepAcquireSource        Step = "acquire_source"
	StepProvisionRuntime     Step = "provision_runtime"
	StepProvisionPackager    Step = "provision_packager"
	StepConfigureCredentials Step = "configure_credentials"
	StepRewriteVersion       Step = "rewrite_version"
	StepBuildAndPublish      Step = "build_and_publish"
	StepAttachArtifacts      Step = "attach_artifacts"
	StepProposeVersionBump   Step = "propose_version_bump"
)

// PipelineSteps lists all steps in execution order
var PipelineSteps = []Step{
	StepAcquireSource,
	StepProvisionRuntime,
	StepProvisionPackager,
	StepConfigureCredentials,
	StepRewriteVersion,
	StepBuildAndPublish,
	StepAttachArtifacts,
	StepProposeVersionBump,
}

// StepResult records the outcome of a single executed step
type StepResult struct {
	Step     Step
	Err      error
	Duration time.Duration
}

func (r StepResult) Failed() bool {
	return r.Err != nil
}

// Run captures everything a single publish run did; steps after the first failing one
// never execute and leave no result
type Run struct {
	ID             string
	RepoFullName   string
	Tag            string
	StartedAt      time.Time
	Results        []StepResult
	Artifacts      []string
	PullRequestURL string
}

func (r *Run) Failed() bool {
	for _, result := range r.Results {
		if result.Failed() {
			return true
		}
	}

	return false
}

// FailedStep returns the step the run stopped at, or an empty step for a successful run
func (r *Run) FailedStep() Step {
	for _, result := range r.Results {
		if result.Failed() {
			return result.Step
		}
	}

	return Step("")
}

// HasExecuted reports whether the passed step ran, regardless of its outcome
func (r *Run) HasExecuted(step Step) bool {
	for _, result := range r.Results {
		if result.Step == step {
			return true
		}
	}

	return false
}

// versionBumpBranchName derives the proposal branch name from the run start time; the
// embedded timestamp guarantees uniqueness across runs triggered at different times
func versionBumpBranchName(t time.Time) string {
	return fmt.Sprintf("update-version-%v", t.UTC().Unix())
}
