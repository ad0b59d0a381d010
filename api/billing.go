package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/carelink-org/rpm/authz"
	"github.com/carelink-org/rpm/errors"
	"github.com/labstack/echo/v4"
)

// GetPatientBillingSummary
// (GET /v1/patients/:patientId/billing-summary)
func (h *Handler) GetPatientBillingSummary(c echo.Context) error {
	clinicianId := authz.GetAuthUserId(c.Request())
	if clinicianId == nil {
		return errors.NotAuthorized
	}

	from, to, err := parsePeriodParams(c)
	if err != nil {
		return err
	}

	summary, err := h.summaries.GetPatientSummary(c.Request().Context(), *clinicianId, c.Param("patientId"), from, to)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// GetClinicBillingReport
// (GET /v1/clinics/:clinicId/billing-report)
func (h *Handler) GetClinicBillingReport(c echo.Context) error {
	clinicianId := authz.GetAuthUserId(c.Request())
	if clinicianId == nil {
		return errors.NotAuthorized
	}

	from, to, err := parsePeriodParams(c)
	if err != nil {
		return err
	}

	report, err := h.reports.GetClinicReport(c.Request().Context(), *clinicianId, c.Param("clinicId"), from, to)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

func parsePeriodParams(c echo.Context) (*time.Time, *time.Time, error) {
	from, err := parseInstant(c.QueryParam("from"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid from parameter", errors.BadRequest)
	}
	to, err := parseInstant(c.QueryParam("to"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid to parameter", errors.BadRequest)
	}
	return from, to, nil
}

func parseInstant(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
