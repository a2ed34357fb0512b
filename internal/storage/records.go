// ABOUTME: CRUD, bulk import, and query operations for core/sub records.
// ABOUTME: Validates via the catalog schemas and triggers previous-data recompute.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/schema"
)

// corePayload holds the type-specific columns of a core record, persisted as
// one JSON document.
type corePayload struct {
	ExerciseIDs      []uuid.UUID             `json:"exerciseIds,omitempty"`
	ExerciseInputs   []models.ExerciseInput  `json:"exerciseInputs,omitempty"`
	MultipleSets     bool                    `json:"multipleSets,omitempty"`
	MeasurementInput models.MeasurementInput `json:"measurementInput,omitempty"`
}

// subPayload holds the type-specific columns of a sub record.
type subPayload struct {
	FinishedTimestamp *int64               `json:"finishedTimestamp,omitempty"`
	ExerciseResultIDs []uuid.UUID          `json:"exerciseResultIds,omitempty"`
	ExerciseSets      []models.ExerciseSet `json:"exerciseSets,omitempty"`
	BodyWeight        *float64             `json:"bodyWeight,omitempty"`
	Percent           *float64             `json:"percent,omitempty"`
	Inches            *float64             `json:"inches,omitempty"`
	Lbs               *float64             `json:"lbs,omitempty"`
	Number            *float64             `json:"number,omitempty"`
}

// AddRecord validates and inserts a record. Fails with ErrDuplicateID when
// the id already exists. Triggers a previous-data recompute for the owning
// core id (the record's own id if core, its coreId if sub).
func (s *Store) AddRecord(group models.RecordGroup, recordType models.RecordType, rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateRecord(group, recordType, rec); err != nil {
		return err
	}

	exists, err := s.recordExists(group, rec.RecordID())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, rec.RecordID())
	}

	coreID, err := s.insertRecord(rec)
	if err != nil {
		return err
	}
	if err := s.updatePreviousData(coreID); err != nil {
		return err
	}

	s.watch.publish(tableFor(group), tableCoreRecords)
	return nil
}

// PutRecord validates and upserts a record by id, with the same post-write
// projector trigger as AddRecord.
func (s *Store) PutRecord(group models.RecordGroup, recordType models.RecordType, rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateRecord(group, recordType, rec); err != nil {
		return err
	}

	coreID, err := s.upsertRecord(rec)
	if err != nil {
		return err
	}
	if err := s.updatePreviousData(coreID); err != nil {
		return err
	}

	s.watch.publish(tableFor(group), tableCoreRecords)
	return nil
}

// ImportRecords bulk-inserts records after safe-parse validation. Valid
// records commit; invalid or duplicate records are rejected without rolling
// back the valid subset, and reported via *PartialImportError. After the
// bulk insert, previous-data is recomputed for every core record, since the
// batch may touch many core ids.
func (s *Store) ImportRecords(group models.RecordGroup, records []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accepted []models.Record
	var rejected []uuid.UUID
	seen := make(map[uuid.UUID]bool, len(records))

	for _, rec := range records {
		if rec == nil {
			rejected = append(rejected, uuid.Nil)
			continue
		}
		validator, err := catalog.SchemaFor(group, rec.RecordType())
		if err != nil {
			rejected = append(rejected, rec.RecordID())
			continue
		}
		if ok, _ := schema.TryValidate(validator, rec); !ok {
			rejected = append(rejected, rec.RecordID())
			continue
		}
		// Duplicates against the table AND within the batch itself are
		// rejects, never constraint failures.
		if seen[rec.RecordID()] {
			rejected = append(rejected, rec.RecordID())
			continue
		}
		exists, err := s.recordExists(group, rec.RecordID())
		if err != nil {
			return err
		}
		if exists {
			rejected = append(rejected, rec.RecordID())
			continue
		}
		seen[rec.RecordID()] = true
		accepted = append(accepted, rec)
	}

	for _, rec := range accepted {
		if _, err := s.insertRecord(rec); err != nil {
			return err
		}
	}

	if err := s.updateAllPreviousData(); err != nil {
		return err
	}

	s.watch.publish(tableFor(group), tableCoreRecords)

	if len(rejected) > 0 {
		return &PartialImportError{Accepted: len(accepted), RejectedIDs: rejected}
	}
	return nil
}

// DeleteRecord removes a record, returning it. Deleting a core record
// cascades to every sub record with a matching coreId. Deleting a sub record
// recomputes previous-data for the orphaned core id.
func (s *Store) DeleteRecord(group models.RecordGroup, id uuid.UUID) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.getRecord(group, id)
	if err != nil {
		return nil, err
	}

	if group == models.GroupCore {
		if _, err := s.db.Exec(`DELETE FROM core_records WHERE id = ?`, id.String()); err != nil {
			return nil, fmt.Errorf("delete core record: %w", err)
		}
		if _, err := s.db.Exec(`DELETE FROM sub_records WHERE core_id = ?`, id.String()); err != nil {
			return nil, fmt.Errorf("cascade delete sub records: %w", err)
		}
		s.watch.publish(tableCoreRecords, tableSubRecords)
		return rec, nil
	}

	sub := rec.(*models.SubRecord)
	if _, err := s.db.Exec(`DELETE FROM sub_records WHERE id = ?`, id.String()); err != nil {
		return nil, fmt.Errorf("delete sub record: %w", err)
	}
	if err := s.updatePreviousData(sub.CoreID); err != nil {
		return nil, err
	}
	s.watch.publish(tableSubRecords, tableCoreRecords)
	return rec, nil
}

// GetRecord fetches one record by group and id.
func (s *Store) GetRecord(group models.RecordGroup, id uuid.UUID) (models.Record, error) {
	return s.getRecord(group, id)
}

// GetCoreRecords lists core records of a type, ordered by name ascending:
// the catalog is browsed alphabetically.
func (s *Store) GetCoreRecords(recordType models.RecordType) ([]*models.CoreRecord, error) {
	return s.queryCoreRecords(
		`SELECT `+coreColumns+` FROM core_records WHERE record_type = ? ORDER BY name COLLATE NOCASE ASC`,
		string(recordType))
}

// GetSubRecords lists sub records of a type, most recent first: results are
// a reverse-chronological history feed.
func (s *Store) GetSubRecords(recordType models.RecordType) ([]*models.SubRecord, error) {
	return s.querySubRecords(
		`SELECT `+subColumns+` FROM sub_records WHERE record_type = ? ORDER BY created_timestamp DESC`,
		string(recordType))
}

// GetRecords is the generic form of the typed listings, dispatching on group.
func (s *Store) GetRecords(group models.RecordGroup, recordType models.RecordType) ([]models.Record, error) {
	if group == models.GroupCore {
		cores, err := s.GetCoreRecords(recordType)
		if err != nil {
			return nil, err
		}
		records := make([]models.Record, len(cores))
		for i, r := range cores {
			records[i] = r
		}
		return records, nil
	}
	subs, err := s.GetSubRecords(recordType)
	if err != nil {
		return nil, err
	}
	records := make([]models.Record, len(subs))
	for i, r := range subs {
		records[i] = r
	}
	return records, nil
}

// GetAllCoreRecords lists every core record.
func (s *Store) GetAllCoreRecords() ([]*models.CoreRecord, error) {
	return s.queryCoreRecords(`SELECT ` + coreColumns + ` FROM core_records ORDER BY name COLLATE NOCASE ASC`)
}

// GetAllSubRecords lists every sub record.
func (s *Store) GetAllSubRecords() ([]*models.SubRecord, error) {
	return s.querySubRecords(`SELECT ` + subColumns + ` FROM sub_records ORDER BY created_timestamp DESC`)
}

// GetCoreSubRecords lists the sub records for one core id, chronological.
func (s *Store) GetCoreSubRecords(coreID uuid.UUID) ([]*models.SubRecord, error) {
	return s.querySubRecords(
		`SELECT `+subColumns+` FROM sub_records WHERE core_id = ? ORDER BY created_timestamp ASC`,
		coreID.String())
}

// GetLastSubRecord returns the most recent sub record for a core id, or
// ErrNotFound when none has been logged.
func (s *Store) GetLastSubRecord(coreID uuid.UUID) (*models.SubRecord, error) {
	subs, err := s.querySubRecords(
		`SELECT `+subColumns+` FROM sub_records WHERE core_id = ? ORDER BY created_timestamp DESC LIMIT 1`,
		coreID.String())
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: no results for core %s", ErrNotFound, coreID)
	}
	return subs[0], nil
}

// ClearRecordsByType removes all core and sub records of one type.
func (s *Store) ClearRecordsByType(recordType models.RecordType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM core_records WHERE record_type = ?`, string(recordType)); err != nil {
		return fmt.Errorf("clear core records: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM sub_records WHERE record_type = ?`, string(recordType)); err != nil {
		return fmt.Errorf("clear sub records: %w", err)
	}
	s.watch.publish(tableCoreRecords, tableSubRecords)
	return nil
}

// ClearAll empties every table, then re-seeds default settings so the store
// is never left in a keyless state.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	for _, table := range []string{"logs", "settings", "core_records", "sub_records"} {
		if _, err := s.db.Exec(`DELETE FROM ` + table); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	s.watch.publish(tableLogs, tableSettings, tableCoreRecords, tableSubRecords)
	s.mu.Unlock()

	return s.InitSettings()
}

// validateRecord resolves the schema and runs strict validation, including
// the parent-subset check for exercise results: a result may only record
// input kinds its parent exercise declares.
func (s *Store) validateRecord(group models.RecordGroup, recordType models.RecordType, rec models.Record) error {
	validator, err := catalog.SchemaFor(group, recordType)
	if err != nil {
		return err
	}
	if verr := validator(rec); verr != nil {
		return verr
	}

	if group == models.GroupSub && recordType == models.TypeExercise {
		return s.checkSetInputs(rec.(*models.SubRecord))
	}
	return nil
}

// checkSetInputs verifies each set's populated inputs against the parent
// exercise's declared input kinds. A missing parent is not an error here;
// referential integrity is owned by the cascade logic, not the insert path.
func (s *Store) checkSetInputs(sub *models.SubRecord) error {
	parent, err := s.getCoreRecord(sub.CoreID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	declared := make(map[models.ExerciseInput]bool, len(parent.ExerciseInputs))
	for _, in := range parent.ExerciseInputs {
		declared[in] = true
	}

	verr := &schema.ValidationError{}
	for i, set := range sub.ExerciseSets {
		for _, in := range set.PopulatedInputs() {
			if !declared[in] {
				verr.Violations = append(verr.Violations, schema.Violation{
					Path:    fmt.Sprintf("exerciseSets[%d]", i),
					Message: fmt.Sprintf("input %q not declared by exercise %s", in, parent.Name),
				})
			}
		}
	}
	if len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

// insertRecord writes a validated record, returning the owning core id.
func (s *Store) insertRecord(rec models.Record) (uuid.UUID, error) {
	switch r := rec.(type) {
	case *models.CoreRecord:
		payload, err := json.Marshal(corePayload{
			ExerciseIDs:      r.ExerciseIDs,
			ExerciseInputs:   r.ExerciseInputs,
			MultipleSets:     r.MultipleSets,
			MeasurementInput: r.MeasurementInput,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode core payload: %w", err)
		}
		previous, err := marshalPrevious(r.Previous)
		if err != nil {
			return uuid.Nil, err
		}
		_, err = s.db.Exec(`
			INSERT INTO core_records (id, record_type, created_timestamp, name, description, enabled, favorited, active, previous, payload)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID.String(), string(r.Type), r.CreatedTimestamp, r.Name, r.Desc,
			r.Enabled, r.Favorited, r.Active, previous, string(payload))
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert core record: %w", err)
		}
		return r.ID, nil

	case *models.SubRecord:
		payload, err := json.Marshal(subPayload{
			FinishedTimestamp: r.FinishedTimestamp,
			ExerciseResultIDs: r.ExerciseResultIDs,
			ExerciseSets:      r.ExerciseSets,
			BodyWeight:        r.BodyWeight,
			Percent:           r.Percent,
			Inches:            r.Inches,
			Lbs:               r.Lbs,
			Number:            r.Number,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode sub payload: %w", err)
		}
		_, err = s.db.Exec(`
			INSERT INTO sub_records (id, record_type, core_id, created_timestamp, note, active, payload)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID.String(), string(r.Type), r.CoreID.String(), r.CreatedTimestamp,
			r.Note, r.Active, string(payload))
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert sub record: %w", err)
		}
		return r.CoreID, nil
	}
	return uuid.Nil, fmt.Errorf("unsupported record variant %T", rec)
}

// upsertRecord is insertRecord with insert-or-replace semantics.
func (s *Store) upsertRecord(rec models.Record) (uuid.UUID, error) {
	table := "core_records"
	if rec.RecordGroup() == models.GroupSub {
		table = "sub_records"
	}
	if _, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, rec.RecordID().String()); err != nil {
		return uuid.Nil, fmt.Errorf("replace record: %w", err)
	}
	return s.insertRecord(rec)
}

func (s *Store) recordExists(group models.RecordGroup, id uuid.UUID) (bool, error) {
	table := "core_records"
	if group == models.GroupSub {
		table = "sub_records"
	}
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE id = ?`, id.String()).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check record exists: %w", err)
	}
	return n > 0, nil
}

func (s *Store) getRecord(group models.RecordGroup, id uuid.UUID) (models.Record, error) {
	if group == models.GroupCore {
		return s.getCoreRecord(id)
	}
	return s.getSubRecord(id)
}

const coreColumns = "id, record_type, created_timestamp, name, description, enabled, favorited, active, previous, payload"
const subColumns = "id, record_type, core_id, created_timestamp, note, active, payload"

func (s *Store) getCoreRecord(id uuid.UUID) (*models.CoreRecord, error) {
	records, err := s.queryCoreRecords(
		`SELECT `+coreColumns+` FROM core_records WHERE id = ?`, id.String())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: core record %s", ErrNotFound, id)
	}
	return records[0], nil
}

func (s *Store) getSubRecord(id uuid.UUID) (*models.SubRecord, error) {
	records, err := s.querySubRecords(
		`SELECT `+subColumns+` FROM sub_records WHERE id = ?`, id.String())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sub record %s", ErrNotFound, id)
	}
	return records[0], nil
}

func (s *Store) queryCoreRecords(query string, args ...any) ([]*models.CoreRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query core records: %w", err)
	}
	defer rows.Close()

	var records []*models.CoreRecord
	for rows.Next() {
		r, err := scanCoreRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) querySubRecords(query string, args ...any) ([]*models.SubRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sub records: %w", err)
	}
	defer rows.Close()

	var records []*models.SubRecord
	for rows.Next() {
		r, err := scanSubRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanCoreRecord(rows *sql.Rows) (*models.CoreRecord, error) {
	var r models.CoreRecord
	var idStr, recordType, payloadStr string
	var previous sql.NullString

	err := rows.Scan(&idStr, &recordType, &r.CreatedTimestamp, &r.Name, &r.Desc,
		&r.Enabled, &r.Favorited, &r.Active, &previous, &payloadStr)
	if err != nil {
		return nil, fmt.Errorf("scan core record: %w", err)
	}

	r.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse core record id: %w", err)
	}
	r.Type = models.RecordType(recordType)

	var payload corePayload
	if err := json.Unmarshal([]byte(payloadStr), &payload); err != nil {
		return nil, fmt.Errorf("decode core payload: %w", err)
	}
	r.ExerciseIDs = payload.ExerciseIDs
	r.ExerciseInputs = payload.ExerciseInputs
	r.MultipleSets = payload.MultipleSets
	r.MeasurementInput = payload.MeasurementInput

	if previous.Valid && previous.String != "" {
		var p models.Previous
		if err := json.Unmarshal([]byte(previous.String), &p); err != nil {
			return nil, fmt.Errorf("decode previous data: %w", err)
		}
		r.Previous = &p
	}
	return &r, nil
}

func scanSubRecord(rows *sql.Rows) (*models.SubRecord, error) {
	var r models.SubRecord
	var idStr, recordType, coreIDStr, payloadStr string

	err := rows.Scan(&idStr, &recordType, &coreIDStr, &r.CreatedTimestamp,
		&r.Note, &r.Active, &payloadStr)
	if err != nil {
		return nil, fmt.Errorf("scan sub record: %w", err)
	}

	r.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse sub record id: %w", err)
	}
	r.CoreID, err = uuid.Parse(coreIDStr)
	if err != nil {
		return nil, fmt.Errorf("parse sub record core id: %w", err)
	}
	r.Type = models.RecordType(recordType)

	var payload subPayload
	if err := json.Unmarshal([]byte(payloadStr), &payload); err != nil {
		return nil, fmt.Errorf("decode sub payload: %w", err)
	}
	r.FinishedTimestamp = payload.FinishedTimestamp
	r.ExerciseResultIDs = payload.ExerciseResultIDs
	r.ExerciseSets = payload.ExerciseSets
	r.BodyWeight = payload.BodyWeight
	r.Percent = payload.Percent
	r.Inches = payload.Inches
	r.Lbs = payload.Lbs
	r.Number = payload.Number
	return &r, nil
}

func marshalPrevious(p *models.Previous) (any, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode previous data: %w", err)
	}
	return string(data), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
