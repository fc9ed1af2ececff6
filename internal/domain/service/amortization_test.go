package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/domain/model"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/money"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildFrenchSchedule_StandardCase(t *testing.T) {
	schedule, rows := BuildFrenchSchedule(ScheduleInput{
		Principal:         dec("10000"),
		TermMonths:        12,
		NominalAnnualRate: dec("24"),
		Currency:          money.BOB,
		FirstDueDate:      date(2026, time.March, 15),
	})

	require.Len(t, rows, 12)
	assert.True(t, schedule.InstallmentAmount.Equal(dec("945.60")), "installment = %s", schedule.InstallmentAmount)
	assert.True(t, schedule.TotalCapital.Equal(dec("10000.00")))
	assert.True(t, schedule.TotalInterest.Equal(dec("1347.15")), "total interest = %s", schedule.TotalInterest)
	assert.True(t, schedule.TotalPayments.Equal(dec("11347.15")))
	assert.True(t, schedule.RoundingAdjustment.Equal(dec("0.00")))
	assert.Equal(t, model.MethodFrench, schedule.Method)

	expected := []struct {
		number   int
		capital  string
		interest string
		payment  string
		balance  string
	}{
		{1, "745.60", "200.00", "945.60", "9254.40"},
		{2, "760.51", "185.09", "945.60", "8493.89"},
		{3, "775.72", "169.88", "945.60", "7718.17"},
		{11, "908.88", "36.72", "945.60", "927.01"},
		{12, "927.01", "18.54", "945.55", "0.00"},
	}
	for _, want := range expected {
		row := rows[want.number-1]
		assert.Equal(t, want.number, row.Number)
		assert.True(t, row.Capital.Equal(dec(want.capital)), "row %d capital = %s", want.number, row.Capital)
		assert.True(t, row.Interest.Equal(dec(want.interest)), "row %d interest = %s", want.number, row.Interest)
		assert.True(t, row.Payment.Equal(dec(want.payment)), "row %d payment = %s", want.number, row.Payment)
		assert.True(t, row.Balance.Equal(dec(want.balance)), "row %d balance = %s", want.number, row.Balance)
	}
}

func TestBuildFrenchSchedule_SingleInstallment(t *testing.T) {
	schedule, rows := BuildFrenchSchedule(ScheduleInput{
		Principal:         dec("1000"),
		TermMonths:        1,
		NominalAnnualRate: dec("12"),
		Currency:          money.BOB,
		FirstDueDate:      date(2026, time.April, 1),
	})

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Capital.Equal(dec("1000.00")))
	assert.True(t, rows[0].Interest.Equal(dec("10.00")))
	assert.True(t, rows[0].Payment.Equal(dec("1010.00")))
	assert.True(t, rows[0].Balance.Equal(dec("0.00")))
	assert.True(t, schedule.RoundingAdjustment.Equal(dec("0.00")))
}

func TestBuildFrenchSchedule_ZeroRate(t *testing.T) {
	t.Run("even split with cent remainder", func(t *testing.T) {
		schedule, rows := BuildFrenchSchedule(ScheduleInput{
			Principal:         dec("1000"),
			TermMonths:        3,
			NominalAnnualRate: decimal.Zero,
			Currency:          money.BOB,
			FirstDueDate:      date(2026, time.May, 10),
		})

		require.Len(t, rows, 3)
		assert.True(t, rows[0].Capital.Equal(dec("333.33")))
		assert.True(t, rows[1].Capital.Equal(dec("333.33")))
		assert.True(t, rows[2].Capital.Equal(dec("333.34")), "last capital absorbs the remainder")
		assert.True(t, rows[2].Balance.Equal(dec("0.00")))
		assert.True(t, schedule.TotalInterest.Equal(dec("0.00")))
		assert.True(t, schedule.TotalCapital.Equal(dec("1000.00")))
	})

	t.Run("twelve periods", func(t *testing.T) {
		_, rows := BuildFrenchSchedule(ScheduleInput{
			Principal:         dec("10000"),
			TermMonths:        12,
			NominalAnnualRate: decimal.Zero,
			Currency:          money.USD,
			FirstDueDate:      date(2026, time.June, 1),
		})

		require.Len(t, rows, 12)
		for _, row := range rows[:11] {
			assert.True(t, row.Payment.Equal(dec("833.33")))
			assert.True(t, row.Interest.Equal(dec("0.00")))
		}
		assert.True(t, rows[11].Payment.Equal(dec("833.37")))
		assert.True(t, rows[11].Balance.Equal(dec("0.00")))
	})
}

func TestBuildFrenchSchedule_FractionalRate(t *testing.T) {
	schedule, rows := BuildFrenchSchedule(ScheduleInput{
		Principal:         dec("5000"),
		TermMonths:        6,
		NominalAnnualRate: dec("18.5"),
		Currency:          money.BOB,
		FirstDueDate:      date(2026, time.July, 20),
	})

	require.Len(t, rows, 6)
	assert.True(t, schedule.InstallmentAmount.Equal(dec("878.87")), "installment = %s", schedule.InstallmentAmount)
	assert.True(t, schedule.TotalInterest.Equal(dec("273.22")), "total interest = %s", schedule.TotalInterest)
	assert.True(t, rows[0].Capital.Equal(dec("801.79")))
	assert.True(t, rows[0].Interest.Equal(dec("77.08")))
	assert.True(t, rows[5].Capital.Equal(dec("865.53")))
	assert.True(t, rows[5].Interest.Equal(dec("13.34")))
	assert.True(t, rows[5].Balance.Equal(dec("0.00")))
}

func TestBuildFrenchSchedule_Invariants(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		term      int
		rate      string
	}{
		{"small short", "750.50", 3, "9.99"},
		{"standard", "10000", 12, "24"},
		{"long term", "120000", 60, "13.75"},
		{"high rate", "2500", 18, "36"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, rows := BuildFrenchSchedule(ScheduleInput{
				Principal:         dec(tc.principal),
				TermMonths:        tc.term,
				NominalAnnualRate: dec(tc.rate),
				Currency:          money.BOB,
				FirstDueDate:      date(2026, time.January, 5),
			})
			require.Len(t, rows, tc.term)

			sumCapital := money.Zero2()
			prevBalance := money.Round2(dec(tc.principal))
			for _, row := range rows {
				assert.True(t, row.Payment.Equal(row.Capital.Add(row.Interest)),
					"row %d: payment %s != capital %s + interest %s", row.Number, row.Payment, row.Capital, row.Interest)
				assert.True(t, row.Balance.Equal(prevBalance.Sub(row.Capital)),
					"row %d: balance does not chain", row.Number)
				assert.Equal(t, int32(2), -row.Capital.Exponent(), "row %d capital not quantized to cents", row.Number)
				sumCapital = sumCapital.Add(row.Capital)
				prevBalance = row.Balance
			}

			assert.True(t, sumCapital.Equal(money.Round2(dec(tc.principal))), "capital does not sum to principal: %s", sumCapital)
			assert.True(t, rows[len(rows)-1].Balance.Equal(dec("0.00")))
			assert.True(t, schedule.TotalPayments.Equal(schedule.TotalCapital.Add(schedule.TotalInterest)))
		})
	}
}

func TestBuildFrenchSchedule_DueDates(t *testing.T) {
	t.Run("end of month clamps forward", func(t *testing.T) {
		_, rows := BuildFrenchSchedule(ScheduleInput{
			Principal:         dec("3000"),
			TermMonths:        4,
			NominalAnnualRate: dec("12"),
			Currency:          money.BOB,
			FirstDueDate:      date(2026, time.January, 31),
		})

		require.Len(t, rows, 4)
		assert.Equal(t, date(2026, time.January, 31), rows[0].DueDate)
		assert.Equal(t, date(2026, time.February, 28), rows[1].DueDate)
		assert.Equal(t, date(2026, time.March, 28), rows[2].DueDate, "clamped day sticks once shortened")
		assert.Equal(t, date(2026, time.April, 28), rows[3].DueDate)
	})

	t.Run("mid month stays on day", func(t *testing.T) {
		_, rows := BuildFrenchSchedule(ScheduleInput{
			Principal:         dec("3000"),
			TermMonths:        3,
			NominalAnnualRate: dec("12"),
			Currency:          money.BOB,
			FirstDueDate:      date(2026, time.November, 15),
		})

		require.Len(t, rows, 3)
		assert.Equal(t, date(2026, time.November, 15), rows[0].DueDate)
		assert.Equal(t, date(2026, time.December, 15), rows[1].DueDate)
		assert.Equal(t, date(2027, time.January, 15), rows[2].DueDate, "rolls over the year")
	})
}

func TestBuildFrenchSchedule_RejectsDegenerateInput(t *testing.T) {
	_, rows := BuildFrenchSchedule(ScheduleInput{
		Principal:         dec("1000"),
		TermMonths:        0,
		NominalAnnualRate: dec("12"),
		Currency:          money.BOB,
	})
	assert.Nil(t, rows)

	_, rows = BuildFrenchSchedule(ScheduleInput{
		Principal:         dec("-5"),
		TermMonths:        6,
		NominalAnnualRate: dec("12"),
		Currency:          money.BOB,
	})
	assert.Nil(t, rows)
}
