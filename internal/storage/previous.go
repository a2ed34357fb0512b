// ABOUTME: Previous-result projector: keeps each core record's previous
// ABOUTME: snapshot consistent with its latest finalized sub record.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
)

// updatePreviousData recomputes the previous snapshot for one core id from
// the most recent non-active sub record with that coreId. Active sub records
// belong to an in-progress session and are not yet results.
//
// The recompute is idempotent and writes only the core row's previous
// column, so it can never re-trigger itself. A missing core record is a
// benign race (concurrent delete) and a no-op.
func (s *Store) updatePreviousData(coreID uuid.UUID) error {
	subs, err := s.querySubRecords(
		`SELECT `+subColumns+` FROM sub_records WHERE core_id = ? AND active = 0 ORDER BY created_timestamp DESC LIMIT 1`,
		coreID.String())
	if err != nil {
		return err
	}

	previous := &models.Previous{}
	if len(subs) > 0 {
		last := subs[0]
		previous.CreatedTimestamp = last.CreatedTimestamp
		previous.Note = last.Note
		if last.FinishedTimestamp != nil {
			previous.WorkoutDuration = models.FormatDuration(*last.FinishedTimestamp - last.CreatedTimestamp)
		}
		previous.ExerciseSets = last.ExerciseSets
		previous.BodyWeight = last.BodyWeight
		previous.Percent = last.Percent
		previous.Inches = last.Inches
		previous.Lbs = last.Lbs
		previous.Number = last.Number
	}

	encoded, err := marshalPrevious(previous)
	if err != nil {
		return err
	}

	// Zero rows affected means the core record is gone; not an error.
	if _, err := s.db.Exec(`UPDATE core_records SET previous = ? WHERE id = ?`,
		encoded, coreID.String()); err != nil {
		return fmt.Errorf("update previous data: %w", err)
	}
	return nil
}

// updateAllPreviousData sweeps every core record. Used after bulk import and
// safe to re-run at any time.
func (s *Store) updateAllPreviousData() error {
	rows, err := s.db.Query(`SELECT id FROM core_records`)
	if err != nil {
		return fmt.Errorf("list core ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var idStr string
		if err := rows.Scan(&idStr); err != nil {
			return fmt.Errorf("scan core id: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("parse core id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range ids {
		if err := s.updatePreviousData(id); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAllPreviousData is the exported recovery sweep: the previous
// snapshot is pure cache, so loss or suspicion of staleness is repaired by
// recomputing it from the sub-record table.
func (s *Store) UpdateAllPreviousData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.updateAllPreviousData(); err != nil {
		return err
	}
	s.watch.publish(tableCoreRecords)
	return nil
}
