package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arnav/studium/ent"
	"github.com/arnav/studium/ent/cognitiveevent"
	"github.com/arnav/studium/ent/energyevent"
	"github.com/arnav/studium/internal/features"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCognitiveEvent(ctx context.Context, data CognitiveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CognitiveEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetSubject(data.Subject).
		SetTimeTakenSecs(data.TimeTakenSecs).
		SetCorrect(data.Correct).
		SetConfidence(data.Confidence)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save cognitive event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendEnergyEvent(ctx context.Context, data EnergyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.EnergyEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSleepHours(data.SleepHours).
		SetTiredness(data.Tiredness)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save energy event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetTopicID(data.TopicID).
		SetCompletionRate(data.CompletionRate).
		SetDifficulty(data.Difficulty).
		SetQuizAccuracy(data.QuizAccuracy).
		SetLearningRate(data.LearningRate).
		SetMasteryBefore(data.MasteryBefore).
		SetMasteryAfter(data.MasteryAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentCognitiveEvents(ctx context.Context, userID string, limit int) ([]features.CognitiveEvent, error) {
	q := r.client.CognitiveEvent.Query().
		Where(cognitiveevent.UserID(userID)).
		Order(ent.Desc(cognitiveevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cognitive events: %w", err)
	}
	// Newest-first from the query; callers expect oldest-first.
	out := make([]features.CognitiveEvent, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = cognitiveFromRow(row)
	}
	return out, nil
}

func (r *eventRepo) CognitiveEventsSince(ctx context.Context, userID string, since time.Time) ([]features.CognitiveEvent, error) {
	rows, err := r.client.CognitiveEvent.Query().
		Where(
			cognitiveevent.UserID(userID),
			cognitiveevent.TimestampGTE(since),
		).
		Order(ent.Asc(cognitiveevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cognitive events: %w", err)
	}
	out := make([]features.CognitiveEvent, len(rows))
	for i, row := range rows {
		out[i] = cognitiveFromRow(row)
	}
	return out, nil
}

func (r *eventRepo) EnergyLogsSince(ctx context.Context, userID string, since time.Time) ([]features.EnergyLog, error) {
	rows, err := r.client.EnergyEvent.Query().
		Where(
			energyevent.UserID(userID),
			energyevent.TimestampGTE(since),
		).
		Order(ent.Asc(energyevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query energy events: %w", err)
	}
	out := make([]features.EnergyLog, len(rows))
	for i, row := range rows {
		out[i] = features.EnergyLog{
			SleepHours: row.SleepHours,
			Tiredness:  row.Tiredness,
			Timestamp:  row.Timestamp,
		}
	}
	return out, nil
}

func (r *eventRepo) LatestEnergyLog(ctx context.Context, userID string) (*features.EnergyLog, error) {
	row, err := r.client.EnergyEvent.Query().
		Where(energyevent.UserID(userID)).
		Order(ent.Desc(energyevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest energy event: %w", err)
	}
	return &features.EnergyLog{
		SleepHours: row.SleepHours,
		Tiredness:  row.Tiredness,
		Timestamp:  row.Timestamp,
	}, nil
}

func cognitiveFromRow(row *ent.CognitiveEvent) features.CognitiveEvent {
	return features.CognitiveEvent{
		QuestionID:    row.QuestionID,
		Subject:       row.Subject,
		TimeTakenSecs: row.TimeTakenSecs,
		Correct:       row.Correct,
		Confidence:    row.Confidence,
		Timestamp:     row.Timestamp,
	}
}
