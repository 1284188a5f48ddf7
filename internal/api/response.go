package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, "NOT_FOUND")
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, "BAD_REQUEST")
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// WriteTooManyRequests writes a 429 Too Many Requests response.
func WriteTooManyRequests(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusTooManyRequests, message, "RATE_LIMITED")
}

// WriteMethodNotAllowed writes a 405 Method Not Allowed response.
func WriteMethodNotAllowed(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusMethodNotAllowed, message, "METHOD_NOT_ALLOWED")
}

// PeriodResponse is a span of days, inclusive at both ends.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newPeriod(start, end time.Time) PeriodResponse {
	return PeriodResponse{Start: calendar.FormatDate(start), End: calendar.FormatDate(end)}
}

// QuarterResponse describes one quarter of a merch year.
type QuarterResponse struct {
	Calendar calendar.Kind `json:"calendar"`
	Year     int           `json:"year"`
	Quarter  int           `json:"quarter"`
	PeriodResponse
}

// MonthResponse describes one month of a merch year.
type MonthResponse struct {
	Calendar    calendar.Kind   `json:"calendar"`
	Year        int             `json:"year"`
	MerchMonth  int             `json:"merch_month"`
	JulianMonth int             `json:"julian_month"`
	Name        string          `json:"name"`
	Quarter     int             `json:"quarter"`
	Season      calendar.Season `json:"season"`
	Weeks       int             `json:"weeks"`
	PeriodResponse
}

// YearResponse describes a merch year with its quarters and months.
type YearResponse struct {
	Calendar calendar.Kind     `json:"calendar"`
	Year     int               `json:"year"`
	Weeks    int               `json:"weeks"`
	Quarters []QuarterResponse `json:"quarters"`
	Months   []MonthResponse   `json:"months"`
	PeriodResponse
}

// WeekResponse is a resolved merch week with its text renderings.
type WeekResponse struct {
	Date          string          `json:"date"`
	Calendar      calendar.Kind   `json:"calendar"`
	Year          int             `json:"year"`
	MerchMonth    int             `json:"merch_month"`
	Month         int             `json:"month"`
	Quarter       int             `json:"quarter"`
	Season        calendar.Season `json:"season"`
	Week          int             `json:"week"`
	YearWeek      int             `json:"year_week"`
	Short         string          `json:"short"`
	Long          string          `json:"long"`
	Elasticsearch string          `json:"elasticsearch"`
	YearSpan      PeriodResponse  `json:"year_span"`
	MonthSpan     PeriodResponse  `json:"month_span"`
	WeekSpan      PeriodResponse  `json:"week_span"`
}

func newWeekResponse(w calendar.MerchWeek) WeekResponse {
	return WeekResponse{
		Date:          calendar.FormatDate(w.Date),
		Calendar:      w.Calendar,
		Year:          w.Year,
		MerchMonth:    w.MerchMonth,
		Month:         w.Month,
		Quarter:       w.Quarter,
		Season:        w.Season,
		Week:          w.Week,
		YearWeek:      w.YearWeek,
		Short:         w.Format(calendar.FormatShort),
		Long:          w.Format(calendar.FormatLong),
		Elasticsearch: w.Format(calendar.FormatElasticsearch),
		YearSpan:      newPeriod(w.StartOfYear, w.EndOfYear),
		MonthSpan:     newPeriod(w.StartOfMonth, w.EndOfMonth),
		WeekSpan:      newPeriod(w.StartOfWeek, w.EndOfWeek),
	}
}

// ConversionResponse is the result of a merch/Julian month conversion.
type ConversionResponse struct {
	Calendar    calendar.Kind `json:"calendar"`
	MerchMonth  int           `json:"merch_month"`
	JulianMonth int           `json:"julian_month"`
}
