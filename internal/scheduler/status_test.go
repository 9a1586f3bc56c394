package scheduler

import (
	"math"
	"testing"

	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor_ZeroIsOK(t *testing.T) {
	assert.Equal(t, domain.StatusOK, StatusFor(Remaining{Month: 0, Sprint: 0, Total: 0}))
}

func TestStatusFor_AnyNegativeIsBad(t *testing.T) {
	assert.Equal(t, domain.StatusBad, StatusFor(Remaining{Month: -0.01, Sprint: 1, Total: 1}))
	assert.Equal(t, domain.StatusBad, StatusFor(Remaining{Month: 1, Sprint: -0.01, Total: 1}))
	assert.Equal(t, domain.StatusBad, StatusFor(Remaining{Month: 1, Sprint: 1, Total: -0.01}))
}

func TestStatusReasonFor_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		rem       Remaining
		hasSprint bool
		want      domain.StatusReason
	}{
		{"all fine", Remaining{1, 1, 1}, true, domain.ReasonOK},
		{"month wins over all", Remaining{-1, -1, -1}, true, domain.ReasonMonth},
		{"total before sprint", Remaining{1, -1, -1}, true, domain.ReasonTotal},
		{"sprint only", Remaining{1, -1, 1}, true, domain.ReasonSprint},
		{"sprint ignored without sprint", Remaining{1, -1, 1}, false, domain.ReasonOK},
		{"no sprint infinite", Remaining{0, math.Inf(1), 0}, false, domain.ReasonOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusReasonFor(tt.rem, tt.hasSprint))
		})
	}
}

func TestStatusLabelFor(t *testing.T) {
	assert.Equal(t, "OK", StatusLabelFor(domain.ReasonOK))
	assert.Equal(t, "Warning: month cap", StatusLabelFor(domain.ReasonMonth))
	assert.Equal(t, "Warning: total budget", StatusLabelFor(domain.ReasonTotal))
	assert.Equal(t, "Warning: sprint cap", StatusLabelFor(domain.ReasonSprint))
}
