// Package test holds end-to-end scenarios played over telnet against a
// server running the bundled Small world:
//
//	adventure -serve -world Small
//	testrunner -addr localhost:4000
package test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lawnchairsociety/adventure/internal/testclient"
)

// startMarker is part of the Small world's starting room description
const startMarker = "before a small brick"

const replyTimeout = 2 * time.Second

var uniqueCounter uint64

func uniqueName(base string) string {
	return fmt.Sprintf("%s%d", base, atomic.AddUint64(&uniqueCounter, 1))
}

// Verbose controls whether detailed logging is shown during tests
var Verbose = false

// TestResult represents the result of a test
type TestResult struct {
	Name    string
	Passed  bool
	Message string
}

func logAction(testName, action string) {
	if Verbose {
		fmt.Printf("  [%s] %s\n", testName, action)
	}
}

func logResult(testName string, success bool, detail string) {
	if Verbose {
		status := "OK"
		if !success {
			status = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", testName, status, detail)
	}
}

func pass(name, msg string) TestResult { return TestResult{Name: name, Passed: true, Message: msg} }
func fail(name, msg string) TestResult { return TestResult{Name: name, Passed: false, Message: msg} }

// connect starts a fresh game
func connect(testName, serverAddr string) (*testclient.TestClient, error) {
	name := uniqueName("Player")
	logAction(testName, fmt.Sprintf("Connecting as '%s'...", name))
	return testclient.NewTestClient(name, serverAddr, startMarker)
}

// step is one command and a fragment of the reply it must produce.
type step struct {
	cmd  string
	want string
}

// play runs steps in order and stops at the first missing reply.
func play(testName string, client *testclient.TestClient, steps []step) error {
	for _, s := range steps {
		logAction(testName, fmt.Sprintf("Sending %q", s.cmd))
		_, ok := client.Do(s.cmd, s.want, replyTimeout)
		logResult(testName, ok, fmt.Sprintf("expected %q", s.want))
		if !ok {
			if Verbose {
				client.PrintMessages()
			}
			return fmt.Errorf("%q did not answer %q", s.cmd, s.want)
		}
	}
	return nil
}

// testEntry holds a test function and its name
type testEntry struct {
	Name string
	Func func(string) TestResult
}

func getAllTests() []testEntry {
	return []testEntry{
		// Group 1: Rooms & Movement
		{"Starting Room", TestStartingRoom},
		{"Movement", TestMovement},
		{"Synonym Movement", TestSynonymMovement},
		{"Unknown Direction", TestUnknownDirection},
		{"Keyed Exit", TestKeyedExit},
		{"Forced Passage", TestForcedPassage},

		// Group 2: Objects
		{"Lamp Round Trip", TestLampRoundTrip},
		{"Take Guards", TestTakeGuards},
		{"Drop Guards", TestDropGuards},
		{"Object In One Place", TestObjectInOnePlace},

		// Group 3: Session
		{"Help", TestHelp},
		{"Quit Declined", TestQuitDeclined},
		{"Quit Confirmed", TestQuitConfirmed},
		{"Game Over", TestGameOver},
		{"Independent Games", TestIndependentGames},
	}
}

// RunAllTests runs all scenarios in order
func RunAllTests(serverAddr string) []TestResult {
	return RunFilteredTests(serverAddr, "")
}

// GetTestNames returns the names of all available tests
func GetTestNames() []string {
	tests := getAllTests()
	names := make([]string, len(tests))
	for i, t := range tests {
		names[i] = t.Name
	}
	return names
}

// RunFilteredTests runs only tests whose names contain the filter string (case-insensitive)
func RunFilteredTests(serverAddr string, filter string) []TestResult {
	results := make([]TestResult, 0)
	filterLower := strings.ToLower(filter)

	for _, t := range getAllTests() {
		if strings.Contains(strings.ToLower(t.Name), filterLower) {
			results = append(results, t.Func(serverAddr))
		}
	}

	return results
}

// PrintResults prints all test results in a formatted way
func PrintResults(results []TestResult) {
	passed := 0
	failed := 0

	fmt.Println("============================================================")
	fmt.Println("Integration Test Results")
	fmt.Println("============================================================")
	fmt.Println()

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		fmt.Printf("[%s] %s: %s\n", status, r.Name, r.Message)
	}

	fmt.Println()
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Total: %d | Passed: %d | Failed: %d\n", len(results), passed, failed)
	fmt.Println("------------------------------------------------------------")
}
