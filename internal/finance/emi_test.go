package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garage-backend/internal/timeutil"
)

func TestMonthlyInstallmentValidation(t *testing.T) {
	tests := []struct {
		name      string
		principal Money
		rate      float64
		tenure    int
	}{
		{"zero principal", 0, 12, 6},
		{"negative principal", -100, 12, 6},
		{"zero tenure", 10000, 12, 0},
		{"negative tenure", 10000, 12, -3},
		{"negative rate", 10000, -1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyInstallment(tt.principal, tt.rate, tt.tenure)
			assert.ErrorIs(t, err, ErrInvalidSchedule)

			_, err = BuildSchedule(tt.principal, tt.rate, tt.tenure, time.Now())
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestMonthlyInstallmentScenarioB(t *testing.T) {
	// 16520 at 12% annual over 3 months: monthly rate 0.01, so
	// 16520 * 0.01 * 1.01^3 / (1.01^3 - 1) = 5617.17 -> 5617.
	amount, err := MonthlyInstallment(16520, 12, 3)
	require.NoError(t, err)
	assert.Equal(t, Money(5617), amount)
}

func TestBuildScheduleScenarioB(t *testing.T) {
	start := time.Date(2025, time.November, 1, 0, 0, 0, 0, timeutil.IST)
	schedule, err := BuildSchedule(16520, 12, 3, start)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	var principalSum, total Money
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, inst.Amount, inst.PrincipalPortion+inst.InterestPortion)
		principalSum += inst.PrincipalPortion
		total += inst.Amount
	}
	assert.Equal(t, Money(16520), principalSum)

	// All rounding drift is absorbed by the final installment, bounded by
	// tenure-1 currency units against amount * tenure.
	drift := total - 5617*3
	if drift < 0 {
		drift = -drift
	}
	assert.LessOrEqual(t, drift, Money(2))

	assert.Equal(t, Money(165), schedule[0].InterestPortion)
	assert.Equal(t, Money(5452), schedule[0].PrincipalPortion)
	assert.Equal(t, Money(5562), schedule[2].PrincipalPortion)
}

func TestBuildScheduleSingleInstallment(t *testing.T) {
	start := time.Date(2025, time.June, 15, 0, 0, 0, 0, timeutil.IST)
	schedule, err := BuildSchedule(5000, 12, 1, start)
	require.NoError(t, err)
	require.Len(t, schedule, 1)

	// amount = principal + round(principal * monthlyRate)
	assert.Equal(t, Money(5050), schedule[0].Amount)
	assert.Equal(t, Money(5000), schedule[0].PrincipalPortion)
	assert.Equal(t, Money(50), schedule[0].InterestPortion)
	assert.Equal(t, start.AddDate(0, 1, 0), schedule[0].DueDate)
}

func TestBuildScheduleZeroInterest(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, timeutil.IST)
	schedule, err := BuildSchedule(10000, 0, 3, start)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	// ceil(10000/3) = 3334; the last installment absorbs the difference.
	assert.Equal(t, Money(3334), schedule[0].Amount)
	assert.Equal(t, Money(3334), schedule[1].Amount)
	assert.Equal(t, Money(3332), schedule[2].Amount)

	var principalSum Money
	for _, inst := range schedule {
		assert.Equal(t, Money(0), inst.InterestPortion)
		principalSum += inst.PrincipalPortion
	}
	assert.Equal(t, Money(10000), principalSum)
}

func TestBuildScheduleFirstInstallmentPaidAtStart(t *testing.T) {
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, timeutil.IST)
	schedule, err := BuildSchedule(12000, 10, 4, start)
	require.NoError(t, err)

	assert.Equal(t, InstallmentPaid, schedule[0].Status)
	require.NotNil(t, schedule[0].PaidDate)
	assert.Equal(t, start, *schedule[0].PaidDate)

	for _, inst := range schedule[1:] {
		assert.Equal(t, InstallmentPending, inst.Status)
		assert.Nil(t, inst.PaidDate)
	}
}

func TestBuildScheduleDueDatesClampMonthEnd(t *testing.T) {
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, timeutil.IST)
	schedule, err := BuildSchedule(30000, 12, 12, start)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, timeutil.IST), schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, timeutil.IST), schedule[1].DueDate)
	assert.Equal(t, time.Date(2025, time.April, 30, 0, 0, 0, 0, timeutil.IST), schedule[2].DueDate)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, timeutil.IST), schedule[11].DueDate)
}

func TestBuildSchedulePrincipalSumProperty(t *testing.T) {
	start := time.Date(2025, time.May, 5, 0, 0, 0, 0, timeutil.IST)
	cases := []struct {
		principal Money
		rate      float64
		tenure    int
	}{
		{16520, 12, 3},
		{100000, 9.5, 24},
		{7777, 18, 7},
		{5, 0, 4},
		{1, 12, 2},
		{250000, 7.25, 60},
	}
	for _, c := range cases {
		schedule, err := BuildSchedule(c.principal, c.rate, c.tenure, start)
		require.NoError(t, err)
		require.Len(t, schedule, c.tenure)

		var principalSum Money
		for _, inst := range schedule {
			assert.GreaterOrEqual(t, inst.PrincipalPortion, Money(0))
			principalSum += inst.PrincipalPortion
		}
		assert.Equal(t, c.principal, principalSum, "principal %d rate %.2f tenure %d", c.principal, c.rate, c.tenure)
	}
}
