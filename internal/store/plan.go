package store

import (
	"context"
	"fmt"

	"github.com/arnav/studium/ent"
	"github.com/arnav/studium/ent/planevent"
)

// planRepo implements PlanRepo backed by ent.
type planRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *planRepo) AppendPlan(ctx context.Context, rec PlanRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanID(rec.PlanID).
		SetUserID(rec.UserID).
		SetDate(rec.Date).
		SetStrategy(rec.Strategy).
		SetModelVersion(rec.ModelVersion).
		SetTotalMinutes(rec.TotalMinutes).
		SetEstimatedGain(rec.EstimatedGain).
		SetSlots(rec.Slots).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *planRepo) LatestSlotFit(ctx context.Context, userID, topicID string) (SlotFit, bool, error) {
	// Walk plans newest-first until one contains the topic. Plans are
	// small so scanning slot lists in Go beats a JSON query.
	rows, err := r.client.PlanEvent.Query().
		Where(planevent.UserID(userID)).
		Order(ent.Desc(planevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return SlotFit{}, false, fmt.Errorf("query plan events: %w", err)
	}
	for _, row := range rows {
		for _, slot := range row.Slots {
			if slot.TopicID == topicID {
				return SlotFit{EnergyMatch: slot.EnergyMatch, CognitiveFit: slot.CognitiveFit}, true, nil
			}
		}
	}
	return SlotFit{}, false, nil
}

func (r *planRepo) PlansForDate(ctx context.Context, userID, date string) ([]PlanRecord, error) {
	rows, err := r.client.PlanEvent.Query().
		Where(
			planevent.UserID(userID),
			planevent.Date(date),
		).
		Order(ent.Asc(planevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}
	out := make([]PlanRecord, len(rows))
	for i, row := range rows {
		out[i] = planFromRow(row)
	}
	return out, nil
}

func (r *planRepo) LatestPlan(ctx context.Context, userID string) (*PlanRecord, error) {
	row, err := r.client.PlanEvent.Query().
		Where(planevent.UserID(userID)).
		Order(ent.Desc(planevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	rec := planFromRow(row)
	return &rec, nil
}

func planFromRow(row *ent.PlanEvent) PlanRecord {
	return PlanRecord{
		PlanID:        row.PlanID,
		UserID:        row.UserID,
		Date:          row.Date,
		Strategy:      row.Strategy,
		ModelVersion:  row.ModelVersion,
		TotalMinutes:  row.TotalMinutes,
		EstimatedGain: row.EstimatedGain,
		Slots:         row.Slots,
		Timestamp:     row.Timestamp,
	}
}
