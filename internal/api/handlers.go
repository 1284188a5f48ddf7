package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
	"github.com/zapponejosh/merch-calendar/internal/config"
	"github.com/zapponejosh/merch-calendar/internal/logger"
)

const (
	minYear = 1
	maxYear = 9998
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	calendars map[calendar.Kind]*calendar.Calendar
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	h := &Handlers{
		calendars: make(map[calendar.Kind]*calendar.Calendar),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
	for _, k := range calendar.ValidKinds() {
		cal, _ := calendar.ForKind(k)
		h.calendars[k] = cal
	}
	return h
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/{calendar}/today and GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, newWeekResponse(cal.WeekOf(calendar.DateOf(h.now()))))
}

// GetDate handles GET /api/v1/{calendar}/dates/{YYYY-MM-DD}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}

	week, err := calendar.FromDateString(chi.URLParam(r, "date"), cal)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, newWeekResponse(week))
}

// GetMonthsInRange handles GET /api/v1/{calendar}/months?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetMonthsInRange(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1
	if months > h.cfg.MaxRangeMonths {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d months", h.cfg.MaxRangeMonths))
		return
	}

	starts := cal.MerchMonthsIn(start, end)
	result := make([]string, 0, len(starts))
	for _, s := range starts {
		result = append(result, calendar.FormatDate(s))
	}

	WriteSuccess(w, map[string]interface{}{
		"calendar": cal.Kind(),
		"start":    startStr,
		"end":      endStr,
		"months":   result,
	})
}

// ConvertMonth handles GET /api/v1/{calendar}/convert/{direction}/{month}
func (h *Handlers) ConvertMonth(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		WriteBadRequest(w, "Month must be an integer")
		return
	}

	resp := ConversionResponse{Calendar: cal.Kind()}
	switch direction := chi.URLParam(r, "direction"); direction {
	case "merch-to-julian":
		resp.MerchMonth = month
		resp.JulianMonth, err = cal.MerchToJulian(month)
	case "julian-to-merch":
		resp.JulianMonth = month
		resp.MerchMonth, err = cal.JulianToMerch(month)
	default:
		WriteBadRequest(w, fmt.Sprintf("Unknown direction %q. Use merch-to-julian or julian-to-merch", direction))
		return
	}
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, resp)
}

// GetYear handles GET /api/v1/{calendar}/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	resp := YearResponse{
		Calendar:       cal.Kind(),
		Year:           year,
		Weeks:          cal.WeeksInYear(year),
		Quarters:       make([]QuarterResponse, 0, 4),
		Months:         make([]MonthResponse, 0, 12),
		PeriodResponse: newPeriod(cal.StartOfYear(year), cal.EndOfYear(year)),
	}
	for q := 1; q <= 4; q++ {
		resp.Quarters = append(resp.Quarters, quarterResponse(cal, year, q))
	}
	for m := 1; m <= 12; m++ {
		month, err := monthResponse(cal, year, m)
		if err != nil {
			h.writeCalendarError(w, r, err)
			return
		}
		resp.Months = append(resp.Months, month)
	}
	WriteSuccess(w, resp)
}

// GetQuarter handles GET /api/v1/{calendar}/years/{year}/quarters/{quarter}
func (h *Handlers) GetQuarter(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	quarter, err := strconv.Atoi(chi.URLParam(r, "quarter"))
	if err != nil || quarter < 1 || quarter > 4 {
		WriteBadRequest(w, "Quarter must be between 1 and 4")
		return
	}
	WriteSuccess(w, quarterResponse(cal, year, quarter))
}

// GetMonth handles GET /api/v1/{calendar}/years/{year}/months/{month}
//
// The month is a Julian month number or name, or merch:N for a merch
// month.
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	cal, year, merchMonth, ok := h.monthParams(w, r)
	if !ok {
		return
	}
	resp, err := monthResponse(cal, year, merchMonth)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, resp)
}

// GetMonthWeeks handles GET /api/v1/{calendar}/years/{year}/months/{month}/weeks
func (h *Handlers) GetMonthWeeks(w http.ResponseWriter, r *http.Request) {
	weeks, ok := h.monthWeeks(w, r)
	if !ok {
		return
	}
	resp := make([]WeekResponse, 0, len(weeks))
	for _, week := range weeks {
		resp = append(resp, newWeekResponse(week))
	}
	WriteSuccess(w, resp)
}

// GetWeek handles GET /api/v1/{calendar}/years/{year}/months/{month}/weeks/{week}
func (h *Handlers) GetWeek(w http.ResponseWriter, r *http.Request) {
	weeks, ok := h.monthWeeks(w, r)
	if !ok {
		return
	}
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > len(weeks) {
		WriteBadRequest(w, fmt.Sprintf("Week must be between 1 and %d", len(weeks)))
		return
	}
	WriteSuccess(w, newWeekResponse(weeks[week-1]))
}

func (h *Handlers) monthWeeks(w http.ResponseWriter, r *http.Request) ([]calendar.MerchWeek, bool) {
	cal, year, merchMonth, ok := h.monthParams(w, r)
	if !ok {
		return nil, false
	}
	weeks, err := cal.WeeksForMonth(year, calendar.MerchMonth(merchMonth))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return nil, false
	}
	return weeks, true
}

// calendarParam resolves the {calendar} URL parameter, falling back to the
// configured default on routes without one.
func (h *Handlers) calendarParam(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, bool) {
	name := chi.URLParam(r, "calendar")
	if name == "" {
		name = string(h.cfg.DefaultCalendar)
	}
	kind, err := calendar.ParseKind(name)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Unknown calendar %q. Use retail or fiscal", name))
		return nil, false
	}
	return h.calendars[kind], true
}

func (h *Handlers) monthParams(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, int, int, bool) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return nil, 0, 0, false
	}
	year, ok := yearParam(w, r)
	if !ok {
		return nil, 0, 0, false
	}
	sel, err := calendar.ParseMonthSelector(chi.URLParam(r, "month"))
	if err != nil {
		h.writeCalendarError(w, r, err)
		return nil, 0, 0, false
	}
	merchMonth, err := cal.ResolveMonth(sel)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return nil, 0, 0, false
	}
	return cal, year, merchMonth, true
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < minYear || year > maxYear {
		WriteBadRequest(w, fmt.Sprintf("Invalid year %q. Use a year between %d and %d", raw, minYear, maxYear))
		return 0, false
	}
	return year, true
}

// writeCalendarError maps invalid arguments to 400 and everything else to
// 500.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	if calendar.IsInvalidArgument(err) {
		WriteBadRequest(w, err.Error())
		return
	}
	logger.FromContext(r.Context(), h.logger).Error("calendar request failed",
		slog.Any("error", err),
		slog.String("path", r.URL.Path),
	)
	WriteInternalError(w, "Failed to compute calendar dates")
}

func quarterResponse(cal *calendar.Calendar, year, quarter int) QuarterResponse {
	return QuarterResponse{
		Calendar:       cal.Kind(),
		Year:           year,
		Quarter:        quarter,
		PeriodResponse: newPeriod(cal.StartOfQuarter(year, quarter), cal.EndOfQuarter(year, quarter)),
	}
}

func monthResponse(cal *calendar.Calendar, year, merchMonth int) (MonthResponse, error) {
	julian, err := cal.MerchToJulian(merchMonth)
	if err != nil {
		return MonthResponse{}, err
	}
	quarter, err := cal.Quarter(merchMonth)
	if err != nil {
		return MonthResponse{}, err
	}
	season, err := cal.Season(merchMonth)
	if err != nil {
		return MonthResponse{}, err
	}
	return MonthResponse{
		Calendar:       cal.Kind(),
		Year:           year,
		MerchMonth:     merchMonth,
		JulianMonth:    julian,
		Name:           time.Month(julian).String(),
		Quarter:        quarter,
		Season:         season,
		Weeks:          cal.WeeksInMonth(year, merchMonth),
		PeriodResponse: newPeriod(cal.StartOfMonth(year, merchMonth), cal.EndOfMonth(year, merchMonth)),
	}, nil
}
