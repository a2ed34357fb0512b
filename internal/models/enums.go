// ABOUTME: Enumerations shared across the record engine.
// ABOUTME: Record types/groups, input kinds, value fields, log levels, setting keys.
package models

// RecordType identifies what kind of entity a record describes.
// Values double as URL/CLI friendly slugs.
type RecordType string

const (
	TypeWorkout     RecordType = "workout"
	TypeExercise    RecordType = "exercise"
	TypeMeasurement RecordType = "measurement"
)

// AllRecordTypes returns all valid record types.
var AllRecordTypes = []RecordType{TypeWorkout, TypeExercise, TypeMeasurement}

// IsValidRecordType checks if a string is a valid record type.
func IsValidRecordType(s string) bool {
	for _, rt := range AllRecordTypes {
		if string(rt) == s {
			return true
		}
	}
	return false
}

// RecordGroup partitions records into catalog entries and logged results.
type RecordGroup string

const (
	GroupCore RecordGroup = "core" // user-authored templates/catalog entries
	GroupSub  RecordGroup = "sub"  // time-stamped results tied to a core record
)

// AllRecordGroups returns all valid record groups.
var AllRecordGroups = []RecordGroup{GroupCore, GroupSub}

// IsValidRecordGroup checks if a string is a valid record group.
func IsValidRecordGroup(s string) bool {
	return s == string(GroupCore) || s == string(GroupSub)
}

// LogLevel classifies application log entries.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// SettingKey is the fixed set of recognized setting keys.
type SettingKey string

const (
	SettingUserHeightInches      SettingKey = "user-height-inches"
	SettingWelcomeOverlay        SettingKey = "welcome-overlay"
	SettingDashboardDescriptions SettingKey = "dashboard-descriptions"
	SettingDarkMode              SettingKey = "dark-mode"
	SettingConsoleLogs           SettingKey = "console-logs"
	SettingInfoMessages          SettingKey = "info-messages"
	SettingLogRetentionDuration  SettingKey = "log-retention-duration"
)

// AllSettingKeys returns all recognized setting keys.
var AllSettingKeys = []SettingKey{
	SettingUserHeightInches,
	SettingWelcomeOverlay,
	SettingDashboardDescriptions,
	SettingDarkMode,
	SettingConsoleLogs,
	SettingInfoMessages,
	SettingLogRetentionDuration,
}

// IsValidSettingKey checks if a string is a recognized setting key.
func IsValidSettingKey(s string) bool {
	for _, k := range AllSettingKeys {
		if string(k) == s {
			return true
		}
	}
	return false
}

// RetentionDuration is a log retention window in milliseconds.
// RetentionForever disables log expiry.
type RetentionDuration int64

const (
	RetentionOneWeek     RetentionDuration = 7 * 24 * 60 * 60 * 1000
	RetentionOneMonth    RetentionDuration = 30 * 24 * 60 * 60 * 1000
	RetentionThreeMonths RetentionDuration = 90 * 24 * 60 * 60 * 1000
	RetentionSixMonths   RetentionDuration = 180 * 24 * 60 * 60 * 1000
	RetentionOneYear     RetentionDuration = 365 * 24 * 60 * 60 * 1000
	RetentionForever     RetentionDuration = -1
)

// ExerciseInput tags a value dimension an exercise records.
type ExerciseInput string

const (
	InputReps       ExerciseInput = "Reps"
	InputWeight     ExerciseInput = "Weight (lbs)"
	InputDistance   ExerciseInput = "Distance (miles)"
	InputDuration   ExerciseInput = "Duration (minutes)"
	InputWatts      ExerciseInput = "Watts"
	InputSpeed      ExerciseInput = "Speed (mph)"
	InputResistance ExerciseInput = "Resistance"
	InputIncline    ExerciseInput = "Incline"
	InputCalories   ExerciseInput = "Calories Burned"
)

// AllExerciseInputs returns all valid exercise input kinds.
var AllExerciseInputs = []ExerciseInput{
	InputReps, InputWeight, InputDistance, InputDuration, InputWatts,
	InputSpeed, InputResistance, InputIncline, InputCalories,
}

// IsValidExerciseInput checks if a string is a valid exercise input kind.
func IsValidExerciseInput(s string) bool {
	for _, in := range AllExerciseInputs {
		if string(in) == s {
			return true
		}
	}
	return false
}

// MeasurementInput tags the single value dimension a measurement records.
type MeasurementInput string

const (
	InputBodyWeight MeasurementInput = "Body Weight (lbs)"
	InputPercent    MeasurementInput = "Percentage"
	InputInches     MeasurementInput = "Inches"
	InputLbs        MeasurementInput = "Lbs"
	InputNumber     MeasurementInput = "Number"
)

// AllMeasurementInputs returns all valid measurement input kinds.
var AllMeasurementInputs = []MeasurementInput{
	InputBodyWeight, InputPercent, InputInches, InputLbs, InputNumber,
}

// IsValidMeasurementInput checks if a string is a valid measurement input kind.
func IsValidMeasurementInput(s string) bool {
	for _, in := range AllMeasurementInputs {
		if string(in) == s {
			return true
		}
	}
	return false
}

// Field names a concrete value field on a result record.
type Field string

const (
	FieldReps       Field = "reps"
	FieldWeight     Field = "weightLbs"
	FieldDistance   Field = "distanceMiles"
	FieldDuration   Field = "durationMinutes"
	FieldWatts      Field = "watts"
	FieldSpeed      Field = "speedMph"
	FieldResistance Field = "resistance"
	FieldIncline    Field = "incline"
	FieldCalories   Field = "calories"

	FieldBodyWeight Field = "bodyWeight"
	FieldPercent    Field = "percent"
	FieldInches     Field = "inches"
	FieldLbs        Field = "lbs"
	FieldNumber     Field = "number"
)

// ExerciseDataFields lists every exercise set value field.
var ExerciseDataFields = []Field{
	FieldReps, FieldWeight, FieldDistance, FieldDuration, FieldWatts,
	FieldSpeed, FieldResistance, FieldIncline, FieldCalories,
}

// MeasurementDataFields lists every measurement result value field.
var MeasurementDataFields = []Field{
	FieldBodyWeight, FieldPercent, FieldInches, FieldLbs, FieldNumber,
}
