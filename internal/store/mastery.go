package store

import (
	"context"
	"fmt"

	"github.com/arnav/studium/ent"
	"github.com/arnav/studium/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo backed by ent with per-key
// locking. The lock covers the read-modify-write so concurrent
// feedback for the same (user, topic) pair can't lose an update.
type masteryRepo struct {
	client *ent.Client
	locks  *keyedLocks
}

func masteryKey(userID, topicID string) string {
	return userID + "\x00" + topicID
}

func (r *masteryRepo) Get(ctx context.Context, userID, topicID string) (float64, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query mastery: %w", err)
	}
	return row.Mastery, nil
}

func (r *masteryRepo) All(ctx context.Context, userID string) (map[string]float64, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.TopicID] = row.Mastery
	}
	return out, nil
}

func (r *masteryRepo) Update(ctx context.Context, userID, topicID string, fn func(float64) float64) (float64, error) {
	lock := r.locks.get(masteryKey(userID, topicID))
	lock.Lock()
	defer lock.Unlock()

	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query mastery: %w", err)
	}

	if ent.IsNotFound(err) {
		// Lazy creation at mastery 0.
		next := fn(0)
		created, cerr := r.client.MasteryRecord.Create().
			SetUserID(userID).
			SetTopicID(topicID).
			SetMastery(next).
			Save(ctx)
		if cerr != nil {
			return 0, fmt.Errorf("create mastery record: %w", cerr)
		}
		return created.Mastery, nil
	}

	next := fn(row.Mastery)
	updated, err := row.Update().SetMastery(next).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update mastery record: %w", err)
	}
	return updated.Mastery, nil
}
