package synthetica

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/domain"
)

// questionnaireService implements app.QuestionnaireService against the
// Synthetica API.
type questionnaireService struct {
	client *Client
}

// NewQuestionnaireService creates a QuestionnaireService backed by the
// Synthetica API.
func NewQuestionnaireService(client *Client) *questionnaireService {
	return &questionnaireService{client: client}
}

func (s *questionnaireService) Status(ctx context.Context) (app.QuestionnaireStatus, error) {
	data, err := s.client.Get(ctx, "/questionnaire/status")
	if err != nil {
		return app.QuestionnaireStatus{}, fmt.Errorf("fetching questionnaire status: %w", mapAuthErr(err))
	}

	var dto struct {
		Answered   bool `json:"answered"`
		UserAnswer int  `json:"user_answer"`
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return app.QuestionnaireStatus{}, fmt.Errorf("parsing questionnaire status: %w", err)
	}
	return app.QuestionnaireStatus{Answered: dto.Answered, Answer: dto.UserAnswer}, nil
}

func (s *questionnaireService) Submit(ctx context.Context, answer int) error {
	if answer < 1 || answer > 3 {
		return domain.ErrNoAnswer
	}

	payload, err := json.Marshal(map[string]int{"answer": answer})
	if err != nil {
		return fmt.Errorf("encoding answer: %w", err)
	}
	if _, err := s.client.Post(ctx, "/questionnaire", bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("submitting answer: %w", mapAuthErr(err))
	}
	return nil
}
