package accident

import (
	"errors"
	"strings"

	"github.com/headmetal/headware-backend/internal/domain"
)

// ReportInput holds the parameters for reporting an accident.
// Date is [year, month, day]; Time is [hour, minute, second].
type ReportInput struct {
	Category  string
	Date      [3]int
	Time      [3]int
	Latitude  float64
	Longitude float64
	WorkID    string
	VictimID  string
}

// Validate checks all fields and collects all errors.
func (i ReportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if strings.TrimSpace(i.WorkID) == "" {
		errs = append(errs, domain.FieldError{Field: "work_id", Message: "required"})
	}
	if strings.TrimSpace(i.VictimID) == "" {
		errs = append(errs, domain.FieldError{Field: "victim_id", Message: "required"})
	}
	if i.Latitude < -90 || i.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be in -90..90"})
	}
	if i.Longitude < -180 || i.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be in -180..180"})
	}

	if _, err := domain.OccurredAtFrom(i.Date, i.Time); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
