package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilldrill/ent"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

func (r *eventRepo) AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetIdempotencyKey(data.IdempotencyKey).
		SetPhase(data.Phase).
		SetSelectedOption(data.SelectedOption).
		SetCorrect(data.Correct).
		SetAnswered(data.Answered).
		SetCorrectCount(data.CorrectCount).
		SetVersion(data.Version).
		SetErrorKind(data.ErrorKind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) PendingSubmissions(ctx context.Context, sessionID string) ([]PendingSubmission, error) {
	events, err := r.client.SubmissionEvent.Query().
		Where(submissionevent.SessionID(sessionID)).
		Order(ent.Asc(submissionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	// A key is pending when its dispatched row has no later resolved or
	// failed row. Replay in sequence order; the last phase wins.
	type state struct {
		questionID string
		option     string
		settled    bool
	}
	byKey := make(map[string]*state)
	var order []string

	for _, e := range events {
		st, ok := byKey[e.IdempotencyKey]
		if !ok {
			st = &state{questionID: e.QuestionID, option: e.SelectedOption}
			byKey[e.IdempotencyKey] = st
			order = append(order, e.IdempotencyKey)
		}
		switch e.Phase {
		case "dispatched":
			st.settled = false
			if e.SelectedOption != "" {
				st.option = e.SelectedOption
			}
		case "resolved", "failed":
			st.settled = true
		}
	}

	var pending []PendingSubmission
	for _, key := range order {
		st := byKey[key]
		if st.settled {
			continue
		}
		pending = append(pending, PendingSubmission{
			QuestionID:     st.questionID,
			IdempotencyKey: key,
			SelectedOption: st.option,
		})
	}
	return pending, nil
}

func (r *eventRepo) ResolvedSubmission(ctx context.Context, sessionID, questionID string) (*ResolvedSubmission, error) {
	e, err := r.client.SubmissionEvent.Query().
		Where(
			submissionevent.SessionID(sessionID),
			submissionevent.QuestionID(questionID),
			submissionevent.Phase("resolved"),
		).
		Order(ent.Desc(submissionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query resolved submission: %w", err)
	}

	return &ResolvedSubmission{
		QuestionID:     e.QuestionID,
		IdempotencyKey: e.IdempotencyKey,
		Correct:        e.Correct,
		Answered:       e.Answered,
		CorrectCount:   e.CorrectCount,
		Version:        e.Version,
	}, nil
}
