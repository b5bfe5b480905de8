package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@demo.com"))
	assert.True(t, IsValidEmail("sarah.johnson@company.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)

	for _, bad := range []string{"2025-3-10", "10-03-2025", "2025-03-10T00:00:00Z", ""} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod("2025-03"))
	assert.False(t, IsValidPeriod("2025-3"))
	assert.False(t, IsValidPeriod("2025-03-10"))
}

func TestIsInSlice(t *testing.T) {
	types := []string{"Casual", "Sick", "Paid"}
	assert.True(t, IsInSlice("Sick", types))
	assert.False(t, IsInSlice("Sabbatical", types))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "days", Message: "days must be a positive integer"},
		{Field: "leaveType", Message: "leaveType must be one of Casual, Sick, Paid"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "days must be a positive integer", m["days"])
	assert.Contains(t, errs.Error(), "days:")
}
