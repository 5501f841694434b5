package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentInput struct {
	PatientID       int    `json:"PatientId" validate:"required,gte=1"`
	AppointmentDate string `json:"AppointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"AppointmentTime" validate:"required,hhmm"`
	Reason          string `json:"Reason" validate:"required,max=500"`
}

func validInput() appointmentInput {
	return appointmentInput{
		PatientID:       1,
		AppointmentDate: "2024-12-25",
		AppointmentTime: "10:30",
		Reason:          "Regular checkup",
	}
}

func TestValidate_ValidInput(t *testing.T) {
	cv := NewValidator()
	input := validInput()

	assert.NoError(t, cv.Validate(&input))
}

func TestValidate_AccumulatesAllBrokenFields(t *testing.T) {
	cv := NewValidator()
	input := appointmentInput{
		PatientID:       0,
		AppointmentDate: "25-12-2024",
		AppointmentTime: "25:99",
		Reason:          "",
	}

	err := cv.Validate(&input)
	require.Error(t, err)

	details := cv.FormatValidationErrors(err)
	require.Len(t, details, 4)

	fields := make([]string, len(details))
	for i, d := range details {
		fields[i] = d.Field
	}
	assert.Equal(t, []string{"PatientId", "AppointmentDate", "AppointmentTime", "Reason"}, fields)
}

func TestValidate_FieldNamesComeFromJSONTags(t *testing.T) {
	cv := NewValidator()
	input := validInput()
	input.PatientID = 0

	err := cv.Validate(&input)
	require.Error(t, err)

	details := cv.FormatValidationErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "PatientId", details[0].Field)
	assert.Equal(t, "PatientId is required", details[0].Message)
}

func TestValidate_NegativePatientID(t *testing.T) {
	cv := NewValidator()
	input := validInput()
	input.PatientID = -5

	err := cv.Validate(&input)
	require.Error(t, err)

	details := cv.FormatValidationErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "PatientId must be greater than or equal to 1", details[0].Message)
}

func TestValidate_TimePattern(t *testing.T) {
	cv := NewValidator()

	valid := []string{"00:00", "09:05", "10:30", "23:59"}
	for _, v := range valid {
		input := validInput()
		input.AppointmentTime = v
		assert.NoError(t, cv.Validate(&input), "time %q should pass", v)
	}

	invalid := []string{"24:00", "10:60", "9:30", "1030", "10:3", "ab:cd", "10:30:00", "10.30"}
	for _, v := range invalid {
		input := validInput()
		input.AppointmentTime = v
		err := cv.Validate(&input)
		require.Error(t, err, "time %q should fail", v)

		details := cv.FormatValidationErrors(err)
		require.Len(t, details, 1)
		assert.Equal(t, "AppointmentTime", details[0].Field)
		assert.Equal(t, "AppointmentTime must be a valid time in HH:MM format", details[0].Message)
	}
}

func TestValidate_DateMustBeCalendarDate(t *testing.T) {
	cv := NewValidator()

	valid := []string{"2024-12-25", "2024-02-29", "2000-01-01"}
	for _, v := range valid {
		input := validInput()
		input.AppointmentDate = v
		assert.NoError(t, cv.Validate(&input), "date %q should pass", v)
	}

	invalid := []string{"2024-02-30", "2024-13-01", "12/25/2024", "2024-1-5", "not-a-date"}
	for _, v := range invalid {
		input := validInput()
		input.AppointmentDate = v
		err := cv.Validate(&input)
		require.Error(t, err, "date %q should fail", v)

		details := cv.FormatValidationErrors(err)
		require.Len(t, details, 1)
		assert.Equal(t, "AppointmentDate", details[0].Field)
	}
}

func TestValidate_ReasonLength(t *testing.T) {
	cv := NewValidator()

	input := validInput()
	input.Reason = strings.Repeat("a", 500)
	assert.NoError(t, cv.Validate(&input))

	input.Reason = strings.Repeat("a", 501)
	err := cv.Validate(&input)
	require.Error(t, err)

	details := cv.FormatValidationErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "Reason must be at most 500 characters", details[0].Message)
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	cv := NewValidator()

	details := cv.FormatValidationErrors(assert.AnError)
	assert.Empty(t, details)
}
