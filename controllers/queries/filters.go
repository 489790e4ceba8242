package queries

import (
	"time"

	"github.com/gookit/validate"

	"github.com/granaflow/granaflow/types"
)

type TimeRangeParams struct {
	TimeRange types.TimeRange `query:"time_range" form:"time_range" json:"time_range" validate:"required|ValidateTimeRange"`
}

func (p TimeRangeParams) ValidateTimeRange(val types.TimeRange) bool {
	switch val {
	case types.RangeToday, types.RangeYesterday, types.Range7Days,
		types.Range14Days, types.Range30Days, types.RangeMonth:
		return true
	default:
		return false
	}
}

func (p TimeRangeParams) Messages() map[string]string {
	return validate.MS{
		"required":          "view.invalid_time_range",
		"ValidateTimeRange": "view.invalid_time_range",
	}
}

type CustomRangeParams struct {
	Start string `query:"start" form:"start" json:"start" validate:"required|ValidateDate"`
	End   string `query:"end" form:"end" json:"end" validate:"required|ValidateDate|ValidateOrder"`
}

func (p CustomRangeParams) ValidateDate(val string) bool {
	_, err := time.Parse("2006-01-02", val)
	return err == nil
}

// ValidateOrder rejects windows with start after end. Unparseable input
// is already reported by ValidateDate, so it passes through here.
func (p CustomRangeParams) ValidateOrder(val string) bool {
	start, err_start := time.Parse("2006-01-02", p.Start)
	end, err_end := time.Parse("2006-01-02", val)
	if err_start != nil || err_end != nil {
		return true
	}

	return !end.Before(start)
}

func (p CustomRangeParams) Messages() map[string]string {
	return validate.MS{
		"required":      "view.invalid_{field}",
		"ValidateDate":  "view.invalid_{field}",
		"ValidateOrder": "view.invalid_range",
	}
}

func (p CustomRangeParams) Bounds() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", p.Start)
	end, _ := time.Parse("2006-01-02", p.End)
	return start, end
}

type MonthParams struct {
	Month string `query:"month" form:"month" json:"month" validate:"ValidateMonth"`
}

func (p MonthParams) ValidateMonth(val string) bool {
	if val == "" {
		return true
	}
	_, err := time.Parse("2006-01", val)
	return err == nil
}

func (p MonthParams) Messages() map[string]string {
	return validate.MS{
		"ValidateMonth": "financials.invalid_month",
	}
}

// Resolve defaults to the current month. The parsed month is anchored
// in the session's location so the month boundary is a local calendar
// boundary, not a UTC one.
func (p MonthParams) Resolve(now time.Time, loc *time.Location) time.Time {
	if p.Month == "" {
		return now
	}

	month, _ := time.ParseInLocation("2006-01", p.Month, loc)
	return month
}
