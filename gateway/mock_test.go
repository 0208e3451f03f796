package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/gateway"
	"learnhub/models"
)

func TestMockCourseSnapshot(t *testing.T) {
	mock := gateway.NewMockProvider(42)

	courses := mock.CourseData()
	require.Len(t, courses, 4)
	for i, want := range []string{"c1", "c2", "c3", "c4"} {
		assert.Equal(t, want, courses[i].ID)
	}
}

func TestMockAssetsFilterByLab(t *testing.T) {
	mock := gateway.NewMockProvider(42)

	assets := mock.AssetData("l1")
	require.Len(t, assets, 2)
	for _, a := range assets {
		assert.Equal(t, "l1", a.LabID)
	}

	assert.Empty(t, mock.AssetData("no-such-lab"))
}

func TestMockAdminStatsAreSeededAndDeterministic(t *testing.T) {
	mock := gateway.NewMockProvider(42)

	stats := mock.AdminStatsData()
	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 5, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalEnrollments)
	require.Len(t, stats.CoursePerformance, 4)

	seen := map[string]bool{}
	for _, p := range stats.CoursePerformance {
		assert.False(t, seen[p.CourseID], "one entry per course id")
		seen[p.CourseID] = true
		assert.GreaterOrEqual(t, p.EnrolledCount, 10)
		assert.LessOrEqual(t, p.EnrolledCount, 49)
		assert.LessOrEqual(t, p.CompletedCount, p.EnrolledCount)
	}

	// same seed, same numbers, call after call
	assert.Equal(t, stats, mock.AdminStatsData())
	assert.Equal(t, stats, gateway.NewMockProvider(42).AdminStatsData())
}

func TestMockLeaderboardRanksByPoints(t *testing.T) {
	mock := gateway.NewMockProvider(42)

	board := mock.LeaderboardData()
	require.NotEmpty(t, board)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Points, board[i].Points)
		assert.Equal(t, i, board[i-1].Rank)
	}
	assert.Equal(t, "s2", board[0].ID, "Lindiwe leads the board")
}

func TestMockWritesMutateInMemoryOnly(t *testing.T) {
	mock := gateway.NewMockProvider(42)
	ctx := context.Background()

	created, err := mock.AddCourse(ctx, models.Course{Title: "CNC Routing"})
	require.NoError(t, err)
	assert.Len(t, mock.CourseData(), 5)

	require.NoError(t, mock.DeleteCourse(ctx, created.ID))
	assert.Len(t, mock.CourseData(), 4)

	// a fresh provider still serves the pristine snapshot
	assert.Len(t, gateway.NewMockProvider(42).CourseData(), 4)
}

func TestMockBookingMarksAssetInUse(t *testing.T) {
	mock := gateway.NewMockProvider(42)
	ctx := context.Background()

	booking, err := mock.CreateBooking(ctx, models.Booking{
		AssetID: "a1", StudentID: "s1", Date: "2026-04-10", StartTime: "10:00", DurationHours: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)

	for _, a := range mock.AssetData("l1") {
		if a.ID == "a1" {
			assert.Equal(t, models.AssetInUse, a.Status)
		}
	}
}

func TestMockReportIssueMarksAssetMaintenance(t *testing.T) {
	mock := gateway.NewMockProvider(42)
	ctx := context.Background()

	require.NoError(t, mock.ReportAssetIssue(ctx, "a3", "probe broken"))
	for _, a := range mock.AssetData("l2") {
		if a.ID == "a3" {
			assert.Equal(t, models.AssetMaintenance, a.Status)
		}
	}

	assert.ErrorIs(t, mock.ReportAssetIssue(ctx, "no-such-asset", "x"), gateway.ErrNotFound)
}
