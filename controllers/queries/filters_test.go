package queries

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/controllers/helpers"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

func TestMonthParamsResolveAnchorsInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	params := MonthParams{Month: "2024-02"}
	month := params.Resolve(time.Now(), loc)

	// The resolved instant is local midnight on the first, so the month
	// never shifts backwards in timezones west of UTC.
	assert.Equal(t, time.February, month.In(loc).Month())
	assert.Equal(t, 2024, month.In(loc).Year())
}

func TestMonthParamsResolveFeedsMonthlyRollup(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	transactions := []models.Transaction{{
		ID:     1,
		Type:   types.TypeIncome,
		Amount: decimal.NewFromInt(500),
		Date:   time.Date(2024, 2, 10, 0, 0, 0, 0, loc),
	}}

	params := MonthParams{Month: "2024-02"}
	result := aggregation.ComputeMonthlyFinancials(transactions, params.Resolve(time.Now(), loc), loc)

	assert.Len(t, result.MonthTransactions, 1)
	assert.Equal(t, "500", result.Income.String())
}

func TestMonthParamsResolveDefaultsToNow(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	month := MonthParams{}.Resolve(now, time.UTC)

	assert.Equal(t, now, month)
}

func TestCustomRangeParamsRejectsInvertedBounds(t *testing.T) {
	params := CustomRangeParams{Start: "2024-02-10", End: "2024-01-01"}

	err_src := &helpers.Errors{}
	helpers.Validate(params, err_src)

	assert.Contains(t, err_src.Errors, "view.invalid_range")
}

func TestCustomRangeParamsAcceptsOrderedBounds(t *testing.T) {
	params := CustomRangeParams{Start: "2024-01-01", End: "2024-02-10"}

	err_src := &helpers.Errors{}
	helpers.Validate(params, err_src)
	assert.Equal(t, 0, err_src.Size())

	start, end := params.Bounds()
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), end)
}
