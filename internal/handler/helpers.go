package handler

import (
	"errors"
	"time"

	"go-components-inventory/internal/ledger"
	"go-components-inventory/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// User info from JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// ledgerErrorStatus maps stock ledger rejections onto HTTP codes. Oversell is
// a conflict with current stock; an unknown product reference is not found;
// everything else is a plain bad request.
func ledgerErrorStatus(err error) int {
	var stockErr *ledger.InsufficientStockError
	if errors.As(err, &stockErr) {
		return fiber.StatusConflict
	}
	var unknownErr *ledger.UnknownProductError
	if errors.As(err, &unknownErr) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// parseReportFilter reads the shared report filter query params.
func parseReportFilter(c *fiber.Ctx) (report.Filter, error) {
	var f report.Filter
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		f.StartDate = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		f.EndDate = t
	}
	f.Category = c.Query("category")
	f.Customer = c.Query("customer")
	f.Supplier = c.Query("supplier")
	return f, nil
}
