package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const sweepProcs = 8 // parallel requests during a date sweep

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekResponse is the response for /dates/{date}, /today and week routes
type WeekResponse struct {
	Date          string `json:"date"`
	Calendar      string `json:"calendar"`
	Year          int    `json:"year"`
	MerchMonth    int    `json:"merch_month"`
	Month         int    `json:"month"`
	Week          int    `json:"week"`
	YearWeek      int    `json:"year_week"`
	Season        string `json:"season"`
	Short         string `json:"short"`
	Long          string `json:"long"`
	Elasticsearch string `json:"elasticsearch"`
	MonthSpan     Period `json:"month_span"`
	WeekSpan      Period `json:"week_span"`
}

// YearResponse is the response for /years/{year}
type YearResponse struct {
	Year   int    `json:"year"`
	Weeks  int    `json:"weeks"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Months []struct {
		MerchMonth int    `json:"merch_month"`
		Start      string `json:"start"`
		End        string `json:"end"`
	} `json:"months"`
}

// MonthsResponse is the response for /months?start=&end=
type MonthsResponse struct {
	Months []string `json:"months"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	limiter   *rate.Limiter
	verbose   bool
	sweepYear int

	mu           sync.Mutex
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
		verbose: verbose,
	}
}

// WithSweep adds a pass over every day of year, sending at most
// perSecond requests per second.
func (tr *TestRunner) WithSweep(year int, perSecond float64) *TestRunner {
	tr.sweepYear = year
	tr.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	return tr
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Merch Calendar API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testKnownDates()
	tr.testYears()
	tr.testMonthRange()
	tr.testEdgeCases()
	if tr.sweepYear > 0 {
		tr.testSweep(tr.sweepYear)
	}

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	for _, path := range []string{"/api/v1/today", "/api/v1/retail/today", "/api/v1/fiscal/today"} {
		var week WeekResponse
		if err := tr.getData(path, &week); err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		today := time.Now().Format("2006-01-02")
		if week.Date != today {
			tr.recordError(path, fmt.Sprintf("date = %s, want %s", week.Date, today))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s %s", path, week.Calendar, week.Long))
		tr.printWeekDetail(&week)
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	tests := []struct {
		calendar string
		date     string
		year     int
		long     string
		elastic  string
	}{
		{"retail", "2014-01-01", 2013, "2013:48 Dec W5", "2013-12w05"},
		{"retail", "2014-01-05", 2013, "2013:49 Jan W1", "2013-01w01"},
		{"retail", "2014-02-02", 2014, "2014:1 Feb W1", "2014-02w01"},
		{"retail", "2017-12-30", 2017, "2017:48 Dec W5", "2017-12w05"},
		{"fiscal", "2019-08-01", 2019, "2019:53 Jul W5", "2019-07w05"},
		{"fiscal", "2019-08-04", 2020, "2020:1 Aug W1", "2020-08w01"},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s %s", tt.calendar, tt.date)
		var week WeekResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/%s/dates/%s", tt.calendar, tt.date), &week); err != nil {
			tr.recordError(name, err.Error())
			continue
		}
		if week.Year != tt.year || week.Long != tt.long || week.Elasticsearch != tt.elastic {
			tr.recordError(name, fmt.Sprintf("got %d %q %q, want %d %q %q",
				week.Year, week.Long, week.Elasticsearch, tt.year, tt.long, tt.elastic))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s", name, week.Long))
		tr.printWeekDetail(&week)
	}
}

func (tr *TestRunner) testYears() {
	tr.printSection("Years")

	tests := []struct {
		calendar   string
		year       int
		start, end string
		weeks      int
	}{
		{"retail", 2012, "2012-01-29", "2013-02-02", 53},
		{"retail", 2013, "2013-02-03", "2014-02-01", 52},
		{"retail", 2017, "2017-01-29", "2018-02-03", 53},
		{"fiscal", 2018, "2017-07-30", "2018-07-28", 52},
		{"fiscal", 2019, "2018-07-29", "2019-08-03", 53},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s %d", tt.calendar, tt.year)
		var year YearResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/%s/years/%d", tt.calendar, tt.year), &year); err != nil {
			tr.recordError(name, err.Error())
			continue
		}
		if year.Start != tt.start || year.End != tt.end || year.Weeks != tt.weeks {
			tr.recordError(name, fmt.Sprintf("got %s..%s (%d weeks), want %s..%s (%d weeks)",
				year.Start, year.End, year.Weeks, tt.start, tt.end, tt.weeks))
			continue
		}
		if n := len(year.Months); n != 12 {
			tr.recordError(name, fmt.Sprintf("got %d months, want 12", n))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s..%s, %d weeks", name, year.Start, year.End, year.Weeks))
	}
}

func (tr *TestRunner) testMonthRange() {
	tr.printSection("Merch Months In Range")

	var months MonthsResponse
	if err := tr.getData("/api/v1/fiscal/months?start=2018-08-01&end=2019-07-01", &months); err != nil {
		tr.recordError("Fiscal 2019 months", err.Error())
		return
	}
	if len(months.Months) != 12 || months.Months[0] != "2018-07-29" || months.Months[11] != "2019-06-30" {
		tr.recordError("Fiscal 2019 months", fmt.Sprintf("unexpected months: %v", months.Months))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Fiscal 2019 months: %s .. %s", months.Months[0], months.Months[11]))
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid date", "/api/v1/retail/dates/2014-13-01", http.StatusBadRequest},
		{"Partial date", "/api/v1/retail/dates/2014-01", http.StatusBadRequest},
		{"Unknown calendar", "/api/v1/lunar/today", http.StatusBadRequest},
		{"Merch month 13", "/api/v1/retail/convert/merch-to-julian/13", http.StatusBadRequest},
		{"Week past month end", "/api/v1/retail/years/2014/months/4/weeks/5", http.StatusBadRequest},
		{"Reversed range", "/api/v1/retail/months?start=2014-02-01&end=2014-01-01", http.StatusBadRequest},
		{"Unknown route", "/api/v1/retail/decades/201", http.StatusNotFound},
	}

	for _, tt := range tests {
		resp, err := tr.getRaw(tt.path)
		if err != nil {
			tr.recordError(tt.name, err.Error())
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			tr.recordError(tt.name, fmt.Sprintf("status = %d, want %d", resp.StatusCode, tt.status))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %d", tt.name, resp.StatusCode))
	}
}

// testSweep resolves every day of a Gregorian year on both calendars and
// checks that each answer contains the date it was asked about.
func (tr *TestRunner) testSweep(year int) {
	tr.printSection(fmt.Sprintf("Date Sweep %d", year))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(sweepProcs)

	requests := 0
	for day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); day.Year() == year; day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		for _, cal := range []string{"retail", "fiscal"} {
			requests++
			g.Go(func() error {
				if err := tr.limiter.Wait(ctx); err != nil {
					return fmt.Errorf("rate limit: %w", err)
				}
				tr.checkSweepDate(cal, date)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		tr.recordError("Sweep", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Swept %d dates on both calendars (%d requests)", requests/2, requests))
}

func (tr *TestRunner) checkSweepDate(cal, date string) {
	name := fmt.Sprintf("sweep %s %s", cal, date)

	var week WeekResponse
	if err := tr.getData(fmt.Sprintf("/api/v1/%s/dates/%s", cal, date), &week); err != nil {
		tr.recordError(name, err.Error())
		return
	}

	switch {
	case week.Date != date:
		tr.recordError(name, fmt.Sprintf("date = %s", week.Date))
	case week.Week < 1 || week.Week > 5:
		tr.recordError(name, fmt.Sprintf("week = %d", week.Week))
	case week.WeekSpan.Start > date || week.WeekSpan.End < date:
		tr.recordError(name, fmt.Sprintf("week %s..%s does not contain date", week.WeekSpan.Start, week.WeekSpan.End))
	case week.MonthSpan.Start > date || week.MonthSpan.End < date:
		tr.recordError(name, fmt.Sprintf("month %s..%s does not contain date", week.MonthSpan.Start, week.MonthSpan.End))
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w (body: %s)", err, string(body))
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getData(path string, target interface{}) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, tr.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printWeekDetail(w *WeekResponse) {
	if !tr.verbose || w == nil {
		return
	}
	fmt.Printf("    Merch month: %d (Julian %d), %s\n", w.MerchMonth, w.Month, w.Season)
	fmt.Printf("    Week: %s .. %s\n", w.WeekSpan.Start, w.WeekSpan.End)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(name, msg string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", name, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key sent as X-API-Key")
	verbose := flag.Bool("v", false, "Verbose output (show week details)")
	sweep := flag.Int("sweep", 0, "Also resolve every day of this year (0 to skip)")
	perSecond := flag.Float64("rate", 20, "Requests per second during the sweep")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	if *sweep > 0 {
		runner.WithSweep(*sweep, *perSecond)
	}
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
