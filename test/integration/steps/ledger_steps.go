package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers the givens that stock the ledger through the
// API itself, so scenarios only spell out the behavior under test.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a month exists for (\d+)/(\d+)$`, aMonthExistsFor)
	ctx.Step(`^the (first|second) half has a revenue of "([^"]*)"$`, theHalfHasARevenueOf)
	ctx.Step(`^the (first|second) half has an expense of "([^"]*)" in (\d+) installments?$`, theHalfHasAnExpenseOf)
	ctx.Step(`^installment (\d+) is settled$`, installmentIsSettled)
	ctx.Step(`^installment (\d+) is settled paying "([^"]*)"$`, installmentIsSettledPaying)
}

func aMonthExistsFor(ctx context.Context, year, month int) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body := fmt.Sprintf(`{"owner_id": "%s", "year": %d, "month": %d}`, tc.vars["ownerId"], year, month)
	if err := tc.execute("POST", "/api/months", []byte(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("failed to create month %d/%d: status %d, body %s",
			year, month, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theHalfHasARevenueOf(ctx context.Context, half, amount string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body := fmt.Sprintf(`{"description": "revenue", "amount": %s, "kind": "fixed"}`, amount)
	if err := tc.execute("POST", "/api/periods/"+tc.halfID(half)+"/revenues", []byte(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("failed to add revenue: status %d, body %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theHalfHasAnExpenseOf(ctx context.Context, half, amount string, count int) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body := fmt.Sprintf(
		`{"description": "expense", "total_amount": %s, "installment_count": %d, "category": "general"}`,
		amount, count,
	)
	if err := tc.execute("POST", "/api/periods/"+tc.halfID(half)+"/expenses", []byte(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("failed to add expense: status %d, body %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func installmentIsSettled(ctx context.Context, sequence int) error {
	return settleInstallment(ctx, sequence, "")
}

func installmentIsSettledPaying(ctx context.Context, sequence int, amount string) error {
	return settleInstallment(ctx, sequence, amount)
}

func settleInstallment(ctx context.Context, sequence int, amount string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var payload []byte
	if amount != "" {
		payload = []byte(fmt.Sprintf(`{"paid_amount": %s}`, amount))
	}
	endpoint := fmt.Sprintf("/api/installments/{installment%dId}/settle", sequence)
	if err := tc.execute("PATCH", endpoint, payload); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("failed to settle installment %d: status %d, body %s",
			sequence, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func (tc *testContext) halfID(half string) string {
	if half == "second" {
		return "{secondHalfId}"
	}
	return "{firstHalfId}"
}
