package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/panchanga-api/internal/panchanga"
)

func TestComputeTextOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, "compute", "--date", "21/03/2024", "--time", "12:00", "--zone", "+05:30")
	require.NoError(t, err)

	assert.Contains(t, stdout, "21/03/2024 12:00 +05:30")
	assert.Regexp(t, `tithi\s+Dwadashi`, stdout)
	assert.Regexp(t, `paksha\s+Shukla`, stdout)
	assert.Regexp(t, `nakshatra\s+Ashlesa`, stdout)
	assert.Regexp(t, `yoga\s+Sukarman`, stdout)
	assert.Regexp(t, `karana\s+Bava`, stdout)
	assert.Regexp(t, `rashi\s+Karka`, stdout)
	assert.NotContains(t, stdout, "ayanamsa")
}

func TestComputeVerbose(t *testing.T) {
	stdout, _, err := executeCLI(t, "compute", "--date", "21/03/2024", "--zone", "+05:30", "-v")
	require.NoError(t, err)

	assert.Regexp(t, `day number\s+8847`, stdout)
	assert.Regexp(t, `ayanamsa\s+-24\.194674`, stdout)
	assert.Contains(t, stdout, "tithi=11 nakshatra=8 yoga=6 karana=0 rashi=3")
}

func TestComputeJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, "compute", "--date", "01/01/2000", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var got panchanga.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, panchanga.Result{
		Tithi: "Ekadashi", Paksha: "Krishna", Nakshatra: "Swathi",
		Yoga: "Dhrithi", Karana: "Bava", Rashi: "Tula",
	}, got)
}

func TestComputeJSONVerbose(t *testing.T) {
	stdout, _, err := executeCLI(t, "compute", "--date", "08/04/2024", "--time", "23:30", "--zone", "-04:00", "--json", "--verbose")
	require.NoError(t, err)

	var got panchanga.Detail
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "Kimstughna", got.Result.Karana)
	assert.Equal(t, 10, got.Indices.Karana)
}

func TestComputeRequiresDate(t *testing.T) {
	_, _, err := executeCLI(t, "compute")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"date\" not set")
}

func TestComputeRejectsBadInput(t *testing.T) {
	_, _, err := executeCLI(t, "compute", "--date", "2024-03-21")
	require.Error(t, err)
	assert.True(t, panchanga.IsInputError(err))
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAlmanac(t *testing.T) {
	stdout, _, err := executeCLI(t, "almanac", "--from", "20/03/2024", "--days", "3", "--time", "12:00", "--zone", "+05:30")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAKSHATRA")
	assert.Contains(t, lines[1], "20/03/2024")
	assert.Contains(t, lines[2], "21/03/2024")
	assert.Regexp(t, `Dwadashi\s+Shukla\s+Ashlesa\s+Sukarman\s+Bava\s+Karka`, lines[2])
	assert.Contains(t, lines[3], "22/03/2024")
}

func TestAlmanacJSONCrossesMonthEnd(t *testing.T) {
	stdout, _, err := executeCLI(t, "almanac", "--from", "30/12/1999", "--days", "3", "--time", "12:00", "--json")
	require.NoError(t, err)

	var rows []AlmanacDay
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "31/12/1999", rows[1].Date)
	assert.Equal(t, "01/01/2000", rows[2].Date)
	assert.Equal(t, "Swathi", rows[2].Nakshatra)
}

func TestAlmanacRejectsDayCount(t *testing.T) {
	_, _, err := executeCLI(t, "almanac", "--from", "01/01/2024", "--days", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--days must be between")
}

func TestRunCoverage(t *testing.T) {
	report := runCoverage(2024, 2027, 12, 0)

	assert.Equal(t, 1461, report.TotalDays)
	assert.Empty(t, report.Failures)
	assert.Equal(t, report.TotalDays, report.Shukla+report.Krishna)

	for _, c := range report.summarize() {
		assert.Empty(t, c.Missed, "%s missed %v", c.Element, c.Missed)
		assert.Equal(t, c.Reachable, c.Reached, c.Element.String())
	}

	tithis := report.Counts[panchanga.ElementTithi]
	require.Len(t, tithis, 30)
	for i, n := range tithis {
		assert.NotZero(t, n, "tithi %d", i)
	}
}

func TestCoverage_DuplicateNamesCountedByIndex(t *testing.T) {
	report := newCoverageReport()
	for i := 0; i <= 14; i++ {
		report.Counts[panchanga.ElementTithi][i] = 1
	}
	report.Counts[panchanga.ElementTithi][29] = 1

	var out bytes.Buffer
	missed := printCoverage(&out, report, false)

	// Krishna 15-28 share names with Shukla 0-13 but are separate entries.
	assert.Contains(t, out.String(), "✗ tithi      16/30 reached")
	assert.Contains(t, out.String(), "missing: 15 Prathame")
	assert.GreaterOrEqual(t, missed, 14)
}

func TestCoverage_UnreachableKaranasReportedSeparately(t *testing.T) {
	report := runCoverage(2024, 2024, 12, 0)

	var karana ElementCoverage
	for _, c := range report.summarize() {
		if c.Element == panchanga.ElementKarana {
			karana = c
		}
	}
	assert.Equal(t, []int{7, 8, 9}, karana.Unreachable)
	assert.Equal(t, 8, karana.Reachable)
	assert.Empty(t, karana.Missed)
}

func TestCoverageCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, "coverage", "--start", "2024", "--years", "4")
	require.NoError(t, err, stdout)
	assert.Contains(t, stdout, "Days checked: 1461")
	assert.Contains(t, stdout, "✓ tithi      30/30 reached")
	assert.Contains(t, stdout, "✓ nakshatra  27/27 reached")
	assert.Contains(t, stdout, "✓ karana     8/8 reached")
	assert.Contains(t, stdout, "unreachable: 7 Sakuni")
}
