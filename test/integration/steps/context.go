// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quinzena/backend/config"
	"github.com/quinzena/backend/internal/infra/dependency"
	"github.com/quinzena/backend/test/integration/mock"
)

// testContext holds per-scenario state: the server under test, its database
// and clock, the last response and the IDs captured from earlier responses.
type testContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	headers      map[string]string
	response     *http.Response
	responseBody []byte

	db    *mock.Db
	clock *mock.Clock

	// vars maps placeholder names like "firstHalfId" to values captured
	// from responses, so later steps can reference earlier resources.
	vars map[string]string
}

type contextKey struct{}

func getTestContext(ctx context.Context) *testContext {
	tc, _ := ctx.Value(contextKey{}).(*testContext)
	return tc
}

func setTestContext(ctx context.Context, tc *testContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources shared by all scenarios.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario wires a fresh server per scenario and registers steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &testContext{
			headers: make(map[string]string),
			vars:    make(map[string]string),
			db:      mock.NewDb(),
			clock:   mock.NewClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)),
		}
		tc.vars["ownerId"] = uuid.NewString()

		injector := dependency.NewInjector(config.Load(), tc.db.DbConn, func() bool {
			return true
		}, tc.clock)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return setTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := getTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerRequestSteps(ctx)
	registerLedgerSteps(ctx)
	registerResponseSteps(ctx)
}

func registerRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the current date is "([^"]*)"$`, theCurrentDateIs)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theCurrentDateIs(ctx context.Context, date string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	at, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	tc.clock.SetCurrentTime(at.UTC())
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.execute(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.execute(method, endpoint, []byte(tc.replacePlaceholders(body.Content)))
}

// execute sends the request and captures interesting IDs from the response.
func (tc *testContext) execute(method, endpoint string, payload []byte) error {
	endpoint = tc.replacePlaceholders(endpoint)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.captureIDs(endpoint)
	return nil
}

// replacePlaceholders substitutes {name} tokens with captured values.
func (tc *testContext) replacePlaceholders(content string) string {
	for name, value := range tc.vars {
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return content
}

// captureIDs remembers the IDs of created resources so later steps can
// address them through placeholders.
func (tc *testContext) captureIDs(endpoint string) {
	if tc.response.StatusCode < 200 || tc.response.StatusCode >= 300 {
		return
	}

	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return
	}

	switch {
	case strings.HasSuffix(endpoint, "/months"):
		if id, ok := data["id"].(string); ok {
			tc.vars["monthId"] = id
		}
		monthNum := ""
		if m, ok := data["month"].(float64); ok {
			monthNum = strconv.Itoa(int(m))
		}
		if periods, ok := data["periods"].([]any); ok {
			for _, p := range periods {
				period, ok := p.(map[string]any)
				if !ok {
					continue
				}
				id, _ := period["id"].(string)
				switch period["kind"] {
				case "first_half":
					tc.vars["firstHalfId"] = id
					tc.vars["month"+monthNum+"FirstHalfId"] = id
				case "second_half":
					tc.vars["secondHalfId"] = id
					tc.vars["month"+monthNum+"SecondHalfId"] = id
				}
			}
		}
	case strings.HasSuffix(endpoint, "/expenses"):
		if id, ok := data["id"].(string); ok {
			tc.vars["expenseId"] = id
		}
		if installments, ok := data["installments"].([]any); ok {
			for _, i := range installments {
				inst, ok := i.(map[string]any)
				if !ok {
					continue
				}
				if seq, ok := inst["sequence_number"].(float64); ok {
					if id, ok := inst["id"].(string); ok {
						tc.vars["installment"+strconv.Itoa(int(seq))+"Id"] = id
					}
				}
			}
		}
	case strings.HasSuffix(endpoint, "/revenues"):
		if id, ok := data["id"].(string); ok {
			tc.vars["revenueId"] = id
		}
	}
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := getTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != tc.replacePlaceholders(expected) {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s",
			field, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

// lookupField resolves a dot-separated path in the response JSON. Numeric
// segments index into arrays, e.g. "installments.0.paid".
func (tc *testContext) lookupField(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}
