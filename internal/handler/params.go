package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/domain/calendar"
)

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parseWindow reads the start and end query parameters as YYYY-MM-DD dates.
func parseWindow(c *gin.Context) (calendar.Date, calendar.Date, error) {
	start, err := calendar.Parse(c.Query("start"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid start date: expected YYYY-MM-DD")
	}
	end, err := calendar.Parse(c.Query("end"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("invalid end date: expected YYYY-MM-DD")
	}
	return start, end, nil
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(application.DefaultPageLimit)))
	return application.NormalizePage(page, limit)
}
