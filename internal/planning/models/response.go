package models

// SubmissionAccepted is the message returned once the report has been sent.
const SubmissionAccepted = "Form received and report sent successfully"

// SubmissionResponse is the success payload of a questionnaire submission.
type SubmissionResponse struct {
	Message              string            `json:"message"`
	Name                 string            `json:"name"`
	CurrentAge           int               `json:"current_age"`
	RetirementProjection *ProjectionResult `json:"retirement_projection"`
}
