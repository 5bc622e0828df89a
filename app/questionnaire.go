package app

import "context"

// QuestionnaireStatus reports whether the current user already answered
// the community questionnaire, and what they picked.
type QuestionnaireStatus struct {
	Answered bool
	Answer   int // 1..3 when Answered
}

// QuestionnaireService checks and submits the one-question survey shown on
// the Ratio page.
type QuestionnaireService interface {
	Status(ctx context.Context) (QuestionnaireStatus, error)

	// Submit records the user's answer (1..3).
	Submit(ctx context.Context, answer int) error
}
