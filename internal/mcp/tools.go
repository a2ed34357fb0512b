// ABOUTME: MCP tool implementations for the fitness record store.
// ABOUTME: Record authoring, result logging, and session lifecycle tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fittrack/fittrack/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_exercise",
		Description: "Create an exercise definition with its tracked input kinds",
	}, s.handleCreateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workout",
		Description: "Create a workout definition from an ordered list of exercise ids",
	}, s.handleCreateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_measurement",
		Description: "Create a measurement definition (body weight, body fat, girth, ...)",
	}, s.handleCreateMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Log a measurement result against a measurement definition",
	}, s.handleLogMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List records by group (core or sub) and type (workout, exercise, measurement)",
	}, s.handleListRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete a record by group and id; deleting a core record removes its results",
	}, s.handleDeleteRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "begin_workout",
		Description: "Start a workout session for a workout definition",
	}, s.handleBeginWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Commit the in-progress workout session and keep its results",
	}, s.handleFinishWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "discard_workout",
		Description: "Abandon the in-progress workout session, discarding its results",
	}, s.handleDiscardWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get enabled records per type, active and favorited first, with previous results",
	}, s.handleGetDashboard)
}

// Tool input/output types

type createExerciseInput struct {
	Name         string   `json:"name" jsonschema:"description=Exercise name,required"`
	Desc         string   `json:"desc,omitempty" jsonschema:"description=Optional description"`
	Inputs       []string `json:"inputs,omitempty" jsonschema:"description=Tracked input kinds (Reps, Weight (lbs), Distance (miles), Duration (minutes), Watts, Speed (mph), Resistance, Incline, Calories Burned); empty for instructional-only"`
	MultipleSets bool     `json:"multiple_sets,omitempty" jsonschema:"description=Whether the exercise is performed in multiple sets"`
}

type createWorkoutInput struct {
	Name        string   `json:"name" jsonschema:"description=Workout name,required"`
	Desc        string   `json:"desc,omitempty" jsonschema:"description=Optional description"`
	ExerciseIDs []string `json:"exercise_ids" jsonschema:"description=Ordered exercise ids performed in this workout,required"`
}

type createMeasurementInput struct {
	Name  string `json:"name" jsonschema:"description=Measurement name,required"`
	Input string `json:"input" jsonschema:"description=Measurement input kind (Body Weight (lbs), Percentage, Inches, Lbs, Number),required"`
}

type logMeasurementInput struct {
	MeasurementID string  `json:"measurement_id" jsonschema:"description=Measurement core record id,required"`
	Value         float64 `json:"value" jsonschema:"description=The measured value,required"`
	Note          string  `json:"note,omitempty" jsonschema:"description=Optional note"`
}

type listRecordsInput struct {
	Group string `json:"group" jsonschema:"description=Record group: core or sub,required"`
	Type  string `json:"type" jsonschema:"description=Record type: workout, exercise, or measurement,required"`
}

type deleteRecordInput struct {
	Group string `json:"group" jsonschema:"description=Record group: core or sub,required"`
	ID    string `json:"id" jsonschema:"description=Record id,required"`
}

type beginWorkoutInput struct {
	WorkoutID string `json:"workout_id" jsonschema:"description=Workout core record id,required"`
}

type recordOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleCreateExercise(ctx context.Context, req *mcp.CallToolRequest, input createExerciseInput) (*mcp.CallToolResult, recordOutput, error) {
	var inputs []models.ExerciseInput
	for _, in := range input.Inputs {
		if !models.IsValidExerciseInput(in) {
			return nil, recordOutput{}, fmt.Errorf("unknown exercise input: %s", in)
		}
		inputs = append(inputs, models.ExerciseInput(in))
	}

	exercise := models.NewExercise(input.Name, inputs).WithDesc(input.Desc)
	exercise.MultipleSets = input.MultipleSets

	if err := s.store.AddRecord(models.GroupCore, models.TypeExercise, exercise); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, recordOutput{
		ID:      exercise.ID.String(),
		Name:    exercise.Name,
		Message: fmt.Sprintf("Created exercise %q (ID: %s)", exercise.Name, exercise.ID),
	}, nil
}

func (s *Server) handleCreateWorkout(ctx context.Context, req *mcp.CallToolRequest, input createWorkoutInput) (*mcp.CallToolResult, recordOutput, error) {
	ids, err := parseIDs(input.ExerciseIDs)
	if err != nil {
		return nil, recordOutput{}, err
	}

	workout := models.NewWorkout(input.Name, ids).WithDesc(input.Desc)
	if err := s.store.AddRecord(models.GroupCore, models.TypeWorkout, workout); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	return nil, recordOutput{
		ID:      workout.ID.String(),
		Name:    workout.Name,
		Message: fmt.Sprintf("Created workout %q with %d exercise(s) (ID: %s)", workout.Name, len(ids), workout.ID),
	}, nil
}

func (s *Server) handleCreateMeasurement(ctx context.Context, req *mcp.CallToolRequest, input createMeasurementInput) (*mcp.CallToolResult, recordOutput, error) {
	if !models.IsValidMeasurementInput(input.Input) {
		return nil, recordOutput{}, fmt.Errorf("unknown measurement input: %s", input.Input)
	}

	measurement := models.NewMeasurement(input.Name, models.MeasurementInput(input.Input))
	if err := s.store.AddRecord(models.GroupCore, models.TypeMeasurement, measurement); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to create measurement: %w", err)
	}

	return nil, recordOutput{
		ID:      measurement.ID.String(),
		Name:    measurement.Name,
		Message: fmt.Sprintf("Created measurement %q (ID: %s)", measurement.Name, measurement.ID),
	}, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	coreID, err := uuid.Parse(input.MeasurementID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid measurement id: %s", input.MeasurementID)
	}

	rec, err := s.store.GetRecord(models.GroupCore, coreID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("measurement not found: %s", input.MeasurementID)
	}
	core := rec.(*models.CoreRecord)

	result := models.NewSubRecord(models.TypeMeasurement, core.ID).WithNote(input.Note)
	value := input.Value
	switch core.MeasurementInput {
	case models.InputBodyWeight:
		result.BodyWeight = &value
	case models.InputPercent:
		result.Percent = &value
	case models.InputInches:
		result.Inches = &value
	case models.InputLbs:
		result.Lbs = &value
	case models.InputNumber:
		result.Number = &value
	}

	if err := s.store.AddRecord(models.GroupSub, models.TypeMeasurement, result); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log measurement: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %.2f", core.Name, input.Value),
	}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidRecordGroup(input.Group) {
		return nil, nil, fmt.Errorf("unknown record group: %s", input.Group)
	}
	if !models.IsValidRecordType(input.Type) {
		return nil, nil, fmt.Errorf("unknown record type: %s", input.Type)
	}

	records, err := s.store.GetRecords(models.RecordGroup(input.Group), models.RecordType(input.Type))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": "No records found."}, nil
	}
	return nil, records, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input deleteRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidRecordGroup(input.Group) {
		return nil, simpleOutput{}, fmt.Errorf("unknown record group: %s", input.Group)
	}
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid record id: %s", input.ID)
	}

	if _, err := s.store.DeleteRecord(models.RecordGroup(input.Group), id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s record: %s", input.Group, input.ID),
	}, nil
}

func (s *Server) handleBeginWorkout(ctx context.Context, req *mcp.CallToolRequest, input beginWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.WorkoutID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid workout id: %s", input.WorkoutID)
	}

	rec, err := s.store.GetRecord(models.GroupCore, id)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutID)
	}
	workout := rec.(*models.CoreRecord)

	if err := s.store.BeginWorkout(workout); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to begin workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Started workout %q with %d exercise(s)", workout.Name, len(workout.ExerciseIDs)),
	}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.KeepActiveRecords(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to finish workout: %w", err)
	}
	return nil, simpleOutput{Message: "Workout finished. Results kept."}, nil
}

func (s *Server) handleDiscardWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DiscardActiveRecords(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to discard workout: %w", err)
	}
	return nil, simpleOutput{Message: "Workout discarded. No results kept."}, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	dashboard, err := s.store.GetDashboard()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return nil, dashboard, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise id: %s", r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
