package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitLeaveRequestRequest_Validate(t *testing.T) {
	valid := SubmitLeaveRequestRequest{
		Reason:   "family trip",
		FromDate: "2025-03-10",
		ToDate:   "2025-03-12",
		Type:     "casual",
	}
	assert.NoError(t, valid.Validate())

	sameDay := valid
	sameDay.ToDate = sameDay.FromDate
	assert.NoError(t, sameDay.Validate())

	cases := []struct {
		name  string
		edit  func(r *SubmitLeaveRequestRequest)
		field string
	}{
		{"blank reason", func(r *SubmitLeaveRequestRequest) { r.Reason = "  " }, "reason"},
		{"bad from date", func(r *SubmitLeaveRequestRequest) { r.FromDate = "tomorrow" }, "from_date"},
		{"missing to date", func(r *SubmitLeaveRequestRequest) { r.ToDate = "" }, "to_date"},
		{"unknown type", func(r *SubmitLeaveRequestRequest) { r.Type = "sabbatical" }, "type"},
		{"inverted range", func(r *SubmitLeaveRequestRequest) { r.ToDate = "2025-03-09" }, "to_date"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.edit(&req)

			err := req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			first, _ := errs.First()
			assert.Equal(t, c.field, first.Field)
		})
	}
}

func TestSubmitLeaveRequestRequest_ValidateOn(t *testing.T) {
	today := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	req := SubmitLeaveRequestRequest{
		Reason:   "dentist",
		FromDate: "2025-03-08",
		ToDate:   "2025-03-08",
		Type:     "medical",
	}
	assert.NoError(t, req.ValidateOn(today))

	for _, from := range []string{"2025-03-07", "2025-03-01"} {
		req.FromDate = from
		err := req.ValidateOn(today)
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		first, _ := errs.First()
		assert.Equal(t, "from_date", first.Field)
	}
}

func TestLeaveRequestFilter_Validate(t *testing.T) {
	assert.NoError(t, (&LeaveRequestFilter{}).Validate())

	approved := "approved"
	assert.NoError(t, (&LeaveRequestFilter{Status: &approved}).Validate())

	bogus := "archived"
	assert.Error(t, (&LeaveRequestFilter{Status: &bogus}).Validate())
}
