// ABOUTME: Active-workout session state machine.
// ABOUTME: Idle -> InProgress via BeginWorkout; terminal via discard or commit.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
)

// BeginWorkout activates a workout session: placeholder exercise results are
// created for every referenced exercise (in workout order), one workout
// result aggregates them, and the involved core records are flagged active.
//
// Every referenced exercise is resolved before anything is written, so a
// missing exercise fails without partial activation.
func (s *Store) BeginWorkout(workout *models.CoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if workout == nil || workout.Type != models.TypeWorkout {
		return fmt.Errorf("%w: workout core record required", ErrNotFound)
	}

	active, err := s.activeCoreRecords()
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return ErrSessionAlreadyActive
	}

	// Resolve all exercises up front; no writes happen on failure.
	exercises := make([]*models.CoreRecord, 0, len(workout.ExerciseIDs))
	for _, id := range workout.ExerciseIDs {
		exercise, err := s.getCoreRecord(id)
		if err != nil {
			if isNotFound(err) {
				return &ExerciseNotFoundError{ExerciseID: id}
			}
			return err
		}
		exercises = append(exercises, exercise)
	}

	now := models.NowMillis()

	resultIDs := make([]uuid.UUID, 0, len(exercises))
	for _, exercise := range exercises {
		placeholder := &models.SubRecord{
			Type:             models.TypeExercise,
			ID:               uuid.New(),
			CoreID:           exercise.ID,
			CreatedTimestamp: now,
			Active:           true,
			ExerciseSets:     []models.ExerciseSet{{}},
		}
		if _, err := s.insertRecord(placeholder); err != nil {
			return err
		}
		resultIDs = append(resultIDs, placeholder.ID)
	}

	workoutResult := &models.SubRecord{
		Type:              models.TypeWorkout,
		ID:                uuid.New(),
		CoreID:            workout.ID,
		CreatedTimestamp:  now,
		Active:            true,
		ExerciseResultIDs: resultIDs,
	}
	if _, err := s.insertRecord(workoutResult); err != nil {
		return err
	}

	if err := s.setCoreActive(workout.ID, true); err != nil {
		return err
	}
	for _, exercise := range exercises {
		if err := s.setCoreActive(exercise.ID, true); err != nil {
			return err
		}
	}

	s.watch.publish(tableCoreRecords, tableSubRecords)
	return nil
}

// DiscardActiveRecords abandons the in-progress session: every active sub
// record is deleted outright and every active core record is deactivated.
// No trace of the abandoned attempt remains in history.
func (s *Store) DiscardActiveRecords() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM sub_records WHERE active = 1`); err != nil {
		return fmt.Errorf("discard active sub records: %w", err)
	}

	active, err := s.activeCoreRecords()
	if err != nil {
		return err
	}
	for _, core := range active {
		if err := s.setCoreActive(core.ID, false); err != nil {
			return err
		}
	}

	s.watch.publish(tableCoreRecords, tableSubRecords)
	return nil
}

// KeepActiveRecords commits the in-progress session: sub records are
// finalized first (the workout result gets its finishedTimestamp and every
// result drops its active flag, which triggers the projector), then core
// records are deactivated, so their previous snapshots reflect the
// now-finalized results.
func (s *Store) KeepActiveRecords() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.querySubRecords(
		`SELECT ` + subColumns + ` FROM sub_records WHERE active = 1`)
	if err != nil {
		return err
	}

	// Sets the user never filled in must not become history: empty sets are
	// dropped, and an exercise result left with none is deleted outright
	// rather than committed as an empty record.
	dropped := make(map[uuid.UUID]bool)
	finalize := make([]*models.SubRecord, 0, len(subs))
	for _, sub := range subs {
		if sub.Type == models.TypeExercise {
			var sets []models.ExerciseSet
			for _, set := range sub.ExerciseSets {
				if len(set.PopulatedInputs()) > 0 {
					sets = append(sets, set)
				}
			}
			if len(sets) == 0 {
				if _, err := s.db.Exec(`DELETE FROM sub_records WHERE id = ?`, sub.ID.String()); err != nil {
					return fmt.Errorf("delete empty placeholder result: %w", err)
				}
				dropped[sub.ID] = true
				continue
			}
			sub.ExerciseSets = sets
		}
		finalize = append(finalize, sub)
	}

	now := models.NowMillis()
	for _, sub := range finalize {
		sub.Active = false
		if sub.Type == models.TypeWorkout {
			if sub.FinishedTimestamp == nil {
				finished := now
				sub.FinishedTimestamp = &finished
			}
			if len(dropped) > 0 {
				ids := make([]uuid.UUID, 0, len(sub.ExerciseResultIDs))
				for _, id := range sub.ExerciseResultIDs {
					if !dropped[id] {
						ids = append(ids, id)
					}
				}
				sub.ExerciseResultIDs = ids
			}
		}
		if _, err := s.upsertRecord(sub); err != nil {
			return err
		}
		if err := s.updatePreviousData(sub.CoreID); err != nil {
			return err
		}
	}

	active, err := s.activeCoreRecords()
	if err != nil {
		return err
	}
	for _, core := range active {
		if err := s.setCoreActive(core.ID, false); err != nil {
			return err
		}
	}

	s.watch.publish(tableCoreRecords, tableSubRecords)
	return nil
}

// GetActiveRecords lists the core records flagged active: the in-progress
// workout and its exercises, or nothing while idle.
func (s *Store) GetActiveRecords() ([]*models.CoreRecord, error) {
	return s.activeCoreRecords()
}

// GetActiveSubRecords lists the in-progress result records.
func (s *Store) GetActiveSubRecords() ([]*models.SubRecord, error) {
	return s.querySubRecords(
		`SELECT ` + subColumns + ` FROM sub_records WHERE active = 1 ORDER BY created_timestamp ASC`)
}

func (s *Store) activeCoreRecords() ([]*models.CoreRecord, error) {
	return s.queryCoreRecords(
		`SELECT ` + coreColumns + ` FROM core_records WHERE active = 1 ORDER BY name COLLATE NOCASE ASC`)
}

func (s *Store) setCoreActive(id uuid.UUID, active bool) error {
	if _, err := s.db.Exec(`UPDATE core_records SET active = ? WHERE id = ?`,
		active, id.String()); err != nil {
		return fmt.Errorf("set core record active flag: %w", err)
	}
	return nil
}
