package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportTestEnv() (*ReportUseCase, *memoryStore, *recordingFeed) {
	store := newMemoryStore()
	feed := &recordingFeed{}
	uc := NewReportUseCase(newMemoryReportRepository(store), newMemoryUserRepository(store), feed)
	return uc, store, feed
}

func validInput() CreateReportInput {
	return CreateReportInput{
		FoodItem:         "Milk",
		ShopName:         "Corner Dairy",
		Address:          "12 Market Rd",
		Area:             "Koramangala",
		City:             "Bangalore",
		Lat:              12.9352,
		Lng:              77.6245,
		AdulterationType: "chemical_contamination",
		Description:      "Water mixed with detergent",
	}
}

func TestCreateReport(t *testing.T) {
	uc, store, feed := newReportTestEnv()
	store.addUser("reporter")

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, entity.StatusPending, report.Status)
	assert.Equal(t, entity.SeverityMedium, report.Severity, "severity defaults to medium")
	assert.Equal(t, 0, report.VerificationCount)
	assert.Equal(t, "reporter", report.ReportedBy)
	assert.False(t, report.ReportDate.IsZero())

	assert.Equal(t, 1, store.user("reporter").ReportsSubmitted)
	assert.Len(t, feed.named("report_created"), 1)
}

func TestCreateReportValidation(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")

	cases := []struct {
		name   string
		mutate func(*CreateReportInput)
	}{
		{"missing food item", func(in *CreateReportInput) { in.FoodItem = "" }},
		{"missing description", func(in *CreateReportInput) { in.Description = "" }},
		{"description too long", func(in *CreateReportInput) { in.Description = strings.Repeat("x", entity.MaxDescriptionLength+1) }},
		{"unknown adulteration type", func(in *CreateReportInput) { in.AdulterationType = "bad_vibes" }},
		{"unknown severity", func(in *CreateReportInput) { in.Severity = "catastrophic" }},
		{"latitude out of range", func(in *CreateReportInput) { in.Lat = 91 }},
		{"longitude out of range", func(in *CreateReportInput) { in.Lng = -181 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := uc.CreateReport(context.Background(), "reporter", input)
			assert.True(t, errors.Is(err, "BAD_REQUEST"), "expected BAD_REQUEST, got %v", err)
		})
	}
}

func TestCreateReportBoundaryDescription(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")

	input := validInput()
	input.Description = strings.Repeat("x", entity.MaxDescriptionLength)

	_, err := uc.CreateReport(context.Background(), "reporter", input)
	assert.NoError(t, err)
}

func TestVerifyReportQuorumPromotion(t *testing.T) {
	uc, store, feed := newReportTestEnv()
	store.addUser("reporter")
	for i := 0; i < 3; i++ {
		store.addUser(fmt.Sprintf("verifier-%d", i))
	}

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		updated, err := uc.VerifyReport(context.Background(), report.ID, fmt.Sprintf("verifier-%d", i))
		require.NoError(t, err)
		assert.Equal(t, i+1, updated.VerificationCount)
		assert.Equal(t, entity.StatusPending, updated.Status, "below quorum stays pending")
	}

	updated, err := uc.VerifyReport(context.Background(), report.ID, "verifier-2")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.VerificationCount)
	assert.Equal(t, entity.StatusVerified, updated.Status)
	assert.Len(t, updated.VerifiedBy, updated.VerificationCount)

	assert.Equal(t, 1, store.user("verifier-0").VerificationsProvided)
	assert.Equal(t, 1, store.user("verifier-0").VerificationScore)
	assert.Len(t, feed.named("report_verified"), 3)
}

func TestVerifyReportRejectsDuplicate(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")
	store.addUser("verifier")

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	_, err = uc.VerifyReport(context.Background(), report.ID, "verifier")
	require.NoError(t, err)

	_, err = uc.VerifyReport(context.Background(), report.ID, "verifier")
	assert.True(t, errors.Is(err, "ALREADY_VERIFIED"))

	updated, err := uc.GetReportByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.VerificationCount)
	assert.Equal(t, 1, store.user("verifier").VerificationsProvided, "failed attempt must not move counters")
}

func TestVerifyReportRejectsSelfVerification(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	_, err = uc.VerifyReport(context.Background(), report.ID, "reporter")
	assert.True(t, errors.Is(err, "SELF_VERIFICATION"))
}

func TestVerifyReportNotFound(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("verifier")

	_, err := uc.VerifyReport(context.Background(), "no-such-report", "verifier")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestVerifyReportConcurrentVerifiers(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")

	const verifiers = 10
	for i := 0; i < verifiers; i++ {
		store.addUser(fmt.Sprintf("verifier-%d", i))
	}

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < verifiers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Each verifier tries twice; the second attempt must fail.
			_, first := uc.VerifyReport(context.Background(), report.ID, fmt.Sprintf("verifier-%d", i))
			_, second := uc.VerifyReport(context.Background(), report.ID, fmt.Sprintf("verifier-%d", i))
			assert.NoError(t, first)
			assert.Error(t, second)
		}(i)
	}
	wg.Wait()

	updated, err := uc.GetReportByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, verifiers, updated.VerificationCount)
	assert.Len(t, updated.VerifiedBy, verifiers)
	assert.Equal(t, entity.StatusVerified, updated.Status)

	seen := map[string]bool{}
	for _, v := range updated.VerifiedBy {
		assert.False(t, seen[v.UserID], "verifier %s recorded twice", v.UserID)
		seen[v.UserID] = true
	}
}

func TestDeleteReportOwnership(t *testing.T) {
	uc, store, feed := newReportTestEnv()
	store.addUser("reporter")
	store.addUser("stranger")

	report, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	err = uc.DeleteReport(context.Background(), report.ID, "stranger")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeleteReport(context.Background(), report.ID, "reporter")
	require.NoError(t, err)

	_, err = uc.GetReportByID(context.Background(), report.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.Equal(t, 0, store.user("reporter").ReportsSubmitted, "delete undoes the submit counter")
	assert.Len(t, feed.named("report_deleted"), 1)
}

func TestListReportsInvalidSeverityFilter(t *testing.T) {
	uc, _, _ := newReportTestEnv()

	_, err := uc.ListReports(context.Background(), repository.ReportFilter{Severity: "extreme"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListReportsHidesRejectedByDefault(t *testing.T) {
	uc, store, _ := newReportTestEnv()
	store.addUser("reporter")

	kept, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)
	rejected, err := uc.CreateReport(context.Background(), "reporter", validInput())
	require.NoError(t, err)

	store.mu.Lock()
	store.reports[rejected.ID].Status = entity.StatusRejected
	store.mu.Unlock()

	reports, err := uc.ListReports(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, kept.ID, reports[0].ID)

	reports, err = uc.ListReports(context.Background(), repository.ReportFilter{Status: entity.StatusRejected})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, rejected.ID, reports[0].ID)
}
