// ABOUTME: Preset workout/exercise/measurement catalogs with fixed UUIDs.
// ABOUTME: Loaded through ImportRecords; stable ids make reimport idempotent.
package seed

import (
	"errors"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/storage"
)

// Hardcoded ids act as stable identity for preset records across app
// versions: reimporting never duplicates them.
var (
	barbellSquatID   = uuid.MustParse("50c1fc75-0975-45f8-8177-ff4988b00de2")
	benchPressID     = uuid.MustParse("d681459e-10c8-40ae-94e9-9b06b7c40367")
	deadliftID       = uuid.MustParse("08b12cc1-d4b9-4d22-82db-9e33b3e5c3fa")
	overheadPressID  = uuid.MustParse("cc279615-91a6-42ac-a073-4339e7c2034f")
	barbellRowID     = uuid.MustParse("b8f1a60e-7f21-4f62-8757-d9b371bffd45")
	pullUpsID        = uuid.MustParse("dd16ecb3-68ef-4cc9-a90d-d394c26a30a9")
	treadmillID      = uuid.MustParse("7f40222e-6389-4c1b-a55e-4e6a79a168ef")
	stationaryBikeID = uuid.MustParse("30b116d6-625e-4aba-96ea-b7107a84860c")

	strengthAID = uuid.MustParse("2158e1b2-27e0-4012-bfe0-e2064500c4ca")
	strengthBID = uuid.MustParse("f3a1537c-4d63-43e1-99bd-df5ef59ac220")
	cardioID    = uuid.MustParse("a291154a-bd22-4738-8559-0e4ee48e570d")

	bodyWeightID = uuid.MustParse("43e3fc4e-b419-468c-9888-b5e072d81dfb")
	bodyFatID    = uuid.MustParse("b4450018-1506-450f-a429-9903aded5c9b")
	waistID      = uuid.MustParse("ed12d669-cffd-45f7-802c-9025426341fa")
	chestID      = uuid.MustParse("c5d78e99-f601-451e-ba8c-b096a42a0634")
	bicepsID     = uuid.MustParse("0090f468-5917-4124-98bd-1e7711ab360e")
	thighsID     = uuid.MustParse("6ab3266c-5c02-4a48-9f3a-05a38cb39be5")
)

// Exercises returns the preset exercise catalog.
func Exercises() []models.Record {
	lift := []models.ExerciseInput{models.InputReps, models.InputWeight}
	return []models.Record{
		exercise(barbellSquatID, "Barbell Squat", "Standing barbell squat with the bar resting near your upper traps.", lift, true),
		exercise(benchPressID, "Bench Press", "Lying face up on a flat bench, press the barbell away from your chest.", lift, true),
		exercise(deadliftID, "Deadlift", "Lift the barbell from the floor to a standing position, hinging at the hips.", lift, true),
		exercise(overheadPressID, "Overhead Press", "Standing barbell press overhead from the front rack position.", lift, true),
		exercise(barbellRowID, "Barbell Row", "Bent over with a flat back, row the barbell towards your torso.", lift, true),
		exercise(pullUpsID, "Pull-Ups", "Hang from a bar and pull your chin above it.", []models.ExerciseInput{models.InputReps}, true),
		exercise(treadmillID, "Treadmill", "Walk or run on the treadmill.",
			[]models.ExerciseInput{models.InputDistance, models.InputDuration, models.InputCalories}, false),
		exercise(stationaryBikeID, "Stationary Bike", "Ride the stationary bike.",
			[]models.ExerciseInput{models.InputDuration, models.InputWatts, models.InputCalories}, false),
	}
}

// Workouts returns the preset workout catalog. Exercise order is meaningful:
// it defines session order.
func Workouts() []models.Record {
	return []models.Record{
		workout(strengthAID, "Barbell Strength A", "Alternate with Barbell Strength B.",
			[]uuid.UUID{barbellSquatID, benchPressID, barbellRowID}),
		workout(strengthBID, "Barbell Strength B", "Alternate with Barbell Strength A.",
			[]uuid.UUID{barbellSquatID, overheadPressID, deadliftID}),
		workout(cardioID, "Cardio Mix", "Pick a machine and keep the heart rate up.",
			[]uuid.UUID{treadmillID, stationaryBikeID}),
	}
}

// Measurements returns the preset measurement catalog.
func Measurements() []models.Record {
	return []models.Record{
		measurement(bodyWeightID, "Body Weight", models.InputBodyWeight),
		measurement(bodyFatID, "Body Fat", models.InputPercent),
		measurement(waistID, "Waist", models.InputInches),
		measurement(chestID, "Chest", models.InputInches),
		measurement(bicepsID, "Biceps", models.InputInches),
		measurement(thighsID, "Thighs", models.InputInches),
	}
}

// Load imports every preset catalog. Rejects from an earlier import (ids
// already present) are expected on reimport and not treated as failures.
func Load(store *storage.Store) error {
	records := append(Exercises(), Workouts()...)
	records = append(records, Measurements()...)

	err := store.ImportRecords(models.GroupCore, records)
	var partial *storage.PartialImportError
	if errors.As(err, &partial) {
		return nil
	}
	return err
}

func exercise(id uuid.UUID, name, desc string, inputs []models.ExerciseInput, multipleSets bool) *models.CoreRecord {
	return &models.CoreRecord{
		Type:             models.TypeExercise,
		ID:               id,
		CreatedTimestamp: models.NowMillis(),
		Name:             name,
		Desc:             desc,
		Enabled:          true,
		ExerciseInputs:   inputs,
		MultipleSets:     multipleSets,
	}
}

func workout(id uuid.UUID, name, desc string, exerciseIDs []uuid.UUID) *models.CoreRecord {
	return &models.CoreRecord{
		Type:             models.TypeWorkout,
		ID:               id,
		CreatedTimestamp: models.NowMillis(),
		Name:             name,
		Desc:             desc,
		Enabled:          true,
		ExerciseIDs:      exerciseIDs,
	}
}

func measurement(id uuid.UUID, name string, input models.MeasurementInput) *models.CoreRecord {
	return &models.CoreRecord{
		Type:             models.TypeMeasurement,
		ID:               id,
		CreatedTimestamp: models.NowMillis(),
		Name:             name,
		Enabled:          true,
		MeasurementInput: input,
	}
}
