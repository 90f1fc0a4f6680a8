package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/pkg/apperrors"
)

func seedJobFixtures(f *fixture) {
	f.store.Lock()
	f.store.Jobs = []*models.Job{
		{
			ID: "job1", Title: "Frontend Intern", Company: "TechCorp Solutions",
			Location: "Bangalore", Type: "Internship",
			Skills: []string{"JavaScript", "React"}, PostedDate: "2024-03-01",
		},
		{
			ID: "job2", Title: "ML Engineer", Company: "DataMinds AI",
			Location: "Hyderabad", Type: "Full-time",
			Skills: []string{"Python", "SQL"}, PostedDate: "2024-03-05",
		},
		{
			ID: "job3", Title: "Backend Developer", Company: "TechCorp Solutions",
			Location: "Remote", Type: "Full-time",
			Skills: []string{"Node.js", "SQL"}, PostedDate: "2024-03-12",
		},
	}
	f.store.Unlock()
}

func TestListJobsFilters(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)
	ctx := context.Background()

	all, err := f.jobService.ListJobs(ctx, models.JobFilters{})
	require.NoError(t, err)
	assert.Len(t, all.Jobs, 3)

	byType, err := f.jobService.ListJobs(ctx, models.JobFilters{Type: "internship"})
	require.NoError(t, err)
	require.Len(t, byType.Jobs, 1)
	assert.Equal(t, "job1", byType.Jobs[0].ID)

	byCompany, err := f.jobService.ListJobs(ctx, models.JobFilters{Company: "techcorp"})
	require.NoError(t, err)
	assert.Len(t, byCompany.Jobs, 2)

	bySkills, err := f.jobService.ListJobs(ctx, models.JobFilters{Skills: []string{"SQL", "Python"}})
	require.NoError(t, err)
	require.Len(t, bySkills.Jobs, 1)
	assert.Equal(t, "job2", bySkills.Jobs[0].ID)
}

func TestApplyToJob(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)
	ctx := context.Background()

	resp, err := f.jobService.Apply(ctx, "u1", &dto.ApplyRequest{JobID: "job1"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Application.Status)
	assert.Equal(t, "info", resp.Application.StatusColor)
	assert.Equal(t, "Frontend Intern", resp.Application.Title)

	list, err := f.jobService.ListApplications(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list.Applications, 1)

	// Чужой список пуст
	other, err := f.jobService.ListApplications(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.Applications)
}

func TestApplyUnknownJob(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)

	_, err := f.jobService.Apply(context.Background(), "u1", &dto.ApplyRequest{JobID: "ghost"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)
	ctx := context.Background()

	applied, err := f.jobService.Apply(ctx, "u1", &dto.ApplyRequest{JobID: "job2"})
	require.NoError(t, err)

	updated, err := f.jobService.UpdateApplicationStatus(ctx, "u1", applied.Application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusInterview,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Application.Status)
	assert.Equal(t, models.ApplicationStatusInterview.StatusColor(), updated.Application.StatusColor)

	// Чужой отклик недоступен
	_, err = f.jobService.UpdateApplicationStatus(ctx, "u2", applied.Application.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusOffered,
	})
	require.Error(t, err)
}

func TestSaveJobNoDuplicates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)
	ctx := context.Background()

	_, err := f.jobService.SaveJob(ctx, "u1", &dto.SaveJobRequest{JobID: "job3"})
	require.NoError(t, err)
	_, err = f.jobService.SaveJob(ctx, "u1", &dto.SaveJobRequest{JobID: "job3"})
	require.NoError(t, err)

	saved, err := f.jobService.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, saved.SavedJobs, 1)
}

func TestUnsaveJob(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	seedJobFixtures(f)
	ctx := context.Background()

	_, err := f.jobService.SaveJob(ctx, "u1", &dto.SaveJobRequest{JobID: "job1"})
	require.NoError(t, err)

	require.NoError(t, f.jobService.UnsaveJob(ctx, "u1", "job1"))

	saved, err := f.jobService.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, saved.SavedJobs)

	// Снятие несуществующей закладки - ошибка
	require.Error(t, f.jobService.UnsaveJob(ctx, "u1", "job1"))
}
