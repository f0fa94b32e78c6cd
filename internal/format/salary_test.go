package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func Test_Salary(t *testing.T) {
	assert.Equal(t, "₹6.0L - ₹12.5L", Salary(ptr(600000), ptr(1250000)))
	assert.Equal(t, "₹4.5L+", Salary(ptr(450000), nil))
	assert.Equal(t, "Up to ₹9.0L", Salary(nil, ptr(900000)))
	assert.Equal(t, "Not specified", Salary(nil, nil))
	assert.Equal(t, "Not specified", Salary(ptr(0), ptr(0)))
}

func Test_SalaryRange(t *testing.T) {
	assert.Equal(t, "600000-1200000", SalaryRange(ptr(600000), ptr(1200000)))
	assert.Equal(t, "450000-", SalaryRange(ptr(450000), nil))
	assert.Equal(t, "-", SalaryRange(nil, nil))
}
