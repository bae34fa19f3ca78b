// Command apitest runs a smoke suite against a running panchanga API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
	RequestID  string          `json:"requestId"`
}

// PanchangaResult is the data of a successful calculation.
type PanchangaResult struct {
	Tithi     string `json:"tithi"`
	Paksha    string `json:"paksha"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	Karana    string `json:"karana"`
	Rashi     string `json:"rashi"`
}

func (p PanchangaResult) String() string {
	return fmt.Sprintf("%s %s, %s, %s, %s, %s",
		p.Paksha, p.Tithi, p.Nakshatra, p.Yoga, p.Karana, p.Rashi)
}

// HistoryPage is the data of GET /api/v1/panchanga/history.
type HistoryPage struct {
	Total int `json:"total"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Panchanga API Test Suite")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testKnownMoments()
	tr.testQueryDefaults()
	tr.testInvalidInput()
	tr.testHistory()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, _, err := tr.do(http.MethodGet, "/health", nil)
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if resp.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", resp.Status))
	}
}

// knownMoments have results far from any bucket boundary.
var knownMoments = []struct {
	date, time, zone string
	want             PanchangaResult
}{
	{"21/03/2024", "12:00", "+05:30", PanchangaResult{"Dwadashi", "Shukla", "Ashlesa", "Sukarman", "Bava", "Karka"}},
	{"01/01/2000", "12:00", "+00:00", PanchangaResult{"Ekadashi", "Krishna", "Swathi", "Dhrithi", "Bava", "Tula"}},
	{"08/04/2024", "23:30", "-04:00", PanchangaResult{"Prathame", "Shukla", "Ashwini", "Vaidhruthi", "Kimstughna", "Mesha"}},
	{"11/11/2025", "06:15", "+05:30", PanchangaResult{"Saptami", "Krishna", "Pushya", "Shubha", "Visti", "Karka"}},
}

func (tr *TestRunner) testKnownMoments() {
	tr.printSection("Known Moments")

	for _, tc := range knownMoments {
		name := fmt.Sprintf("%s %s %s", tc.date, tc.time, tc.zone)
		body := map[string]string{"date": tc.date, "time": tc.time, "zone": tc.zone}

		resp, status, err := tr.do(http.MethodPost, "/panchang", body)
		if err != nil {
			tr.recordError(name, err.Error())
			continue
		}
		if status != http.StatusOK {
			tr.recordError(name, fmt.Sprintf("HTTP %d: %s", status, resp.Message))
			continue
		}

		var got PanchangaResult
		if err := json.Unmarshal(resp.Data, &got); err != nil {
			tr.recordError(name, err.Error())
			continue
		}

		if got != tc.want {
			tr.recordError(name, fmt.Sprintf("got %s, want %s", got, tc.want))
			continue
		}
		tr.recordSuccess(name)
		if tr.verbose {
			fmt.Fprintf(tr.out, "    %s\n", got)
		}
	}
}

func (tr *TestRunner) testQueryDefaults() {
	tr.printSection("Query Defaults")

	q := url.Values{}
	q.Set("date", "01/01/2000")

	resp, status, err := tr.do(http.MethodGet, "/api/v1/panchanga?"+q.Encode(), nil)
	if err != nil {
		tr.recordError("GET defaults", err.Error())
		return
	}
	if status != http.StatusOK {
		tr.recordError("GET defaults", fmt.Sprintf("HTTP %d", status))
		return
	}

	var got PanchangaResult
	if err := json.Unmarshal(resp.Data, &got); err != nil {
		tr.recordError("GET defaults", err.Error())
		return
	}
	if got != knownMoments[1].want {
		tr.recordError("GET defaults", fmt.Sprintf("got %s, want %s", got, knownMoments[1].want))
		return
	}
	tr.recordSuccess("GET defaults to 12:00 +00:00")
}

func (tr *TestRunner) testInvalidInput() {
	tr.printSection("Invalid Input")

	testCases := []struct {
		body        map[string]string
		description string
	}{
		{map[string]string{"date": "2024-03-21", "time": "12:00", "zone": "+05:30"}, "ISO date"},
		{map[string]string{"date": "21/03/2024", "time": "noon", "zone": "+05:30"}, "word time"},
		{map[string]string{"date": "21/03/2024", "time": "12:00", "zone": "IST"}, "zone name"},
		{map[string]string{"date": "21/03/2024"}, "missing fields"},
	}

	for _, tc := range testCases {
		_, status, err := tr.do(http.MethodPost, "/panchang", tc.body)
		if err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if status != http.StatusBadRequest {
			tr.recordError(tc.description, fmt.Sprintf("expected 400, got %d", status))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s rejected", tc.description))
	}
}

func (tr *TestRunner) testHistory() {
	tr.printSection("History")

	if tr.apiKey == "" {
		fmt.Fprintln(tr.out, "  - skipped (no API key)")
		return
	}

	resp, status, err := tr.do(http.MethodGet, "/api/v1/panchanga/history?limit=5", nil)
	if err != nil {
		tr.recordError("History", err.Error())
		return
	}
	if status != http.StatusOK {
		tr.recordError("History", fmt.Sprintf("HTTP %d: %s", status, resp.Message))
		return
	}

	var page HistoryPage
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		tr.recordError("History", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("History lists %d calculation(s)", page.Total))
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) do(method, path string, body any) (*APIResponse, int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	httpResp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&apiResp); err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, httpResp.StatusCode, nil
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "--- %s ---\n", name)
	fmt.Fprintln(tr.out)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)
	fmt.Fprintln(tr.out)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "Failures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintln(tr.out)
		fmt.Fprintf(tr.out, "Tests completed with %d failure(s)\n", tr.errorCount)
		return
	}

	fmt.Fprintln(tr.out, "All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for the history endpoints")
	verbose := flag.Bool("v", false, "Verbose output (show results)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, os.Stdout, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
