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

func strptr(s string) *string { return &s }

func TestGetUserProfileEmptyIsValid(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	bundle, err := f.profileService.GetUserProfile(context.Background(), "never-wrote-anything")
	require.NoError(t, err)
	assert.Empty(t, bundle.Education)
	assert.Empty(t, bundle.Skills)
	assert.Empty(t, bundle.Resumes)
	assert.Equal(t, models.Profile{}, bundle.Profile)
}

func TestGetUserProfileIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.profileService.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	second, err := f.profileService.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profileService.UpdateUserProfile(ctx, "u1", &dto.UpdateProfileRequest{
		Bio:   strptr("Student bio"),
		Phone: strptr("+91 1234567890"),
	})
	require.NoError(t, err)

	// Второй апдейт трогает только bio, телефон выживает
	resp, err := f.profileService.UpdateUserProfile(ctx, "u1", &dto.UpdateProfileRequest{
		Bio: strptr("Updated bio"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", resp.Profile.Bio)
	assert.Equal(t, "+91 1234567890", resp.Profile.Phone)
}

func TestEducationLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	added, err := f.profileService.AddEducation(ctx, "u1", &dto.AddEducationRequest{
		Institution: "IIT Delhi",
		Degree:      "B.Tech",
		Field:       "Computer Science",
		StartDate:   "2021-08",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.Education.ID)

	updated, err := f.profileService.UpdateEducation(ctx, "u1", added.Education.ID, &dto.UpdateEducationRequest{
		Grade: strptr("9.0 CGPA"),
	})
	require.NoError(t, err)
	assert.Equal(t, "9.0 CGPA", updated.Education.Grade)
	assert.Equal(t, "IIT Delhi", updated.Education.Institution, "непереданные поля не трогаются")

	require.NoError(t, f.profileService.DeleteEducation(ctx, "u1", added.Education.ID))

	bundle, err := f.profileService.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, bundle.Education)
}

func TestUpdateEducationUnknownID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profileService.AddEducation(ctx, "u1", &dto.AddEducationRequest{
		Institution: "NIT Karnataka",
	})
	require.NoError(t, err)

	_, err = f.profileService.UpdateEducation(ctx, "u1", "no-such-id", &dto.UpdateEducationRequest{
		Grade: strptr("A"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDeleteEducationUnknownID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.profileService.DeleteEducation(context.Background(), "u1", "ghost")
	require.Error(t, err)
}

func TestEducationIsolatedPerAccount(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profileService.AddEducation(ctx, "u1", &dto.AddEducationRequest{Institution: "IIT Delhi"})
	require.NoError(t, err)

	other, err := f.profileService.GetUserProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.Education)
}

func TestUpdateSkillsReplacesWholesale(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profileService.UpdateSkills(ctx, "u1", &dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{
			{Name: "Python", Level: models.SkillLevelAdvanced, Years: 4},
			{Name: "SQL", Level: models.SkillLevelIntermediate, Years: 2},
		},
	})
	require.NoError(t, err)

	resp, err := f.profileService.UpdateSkills(ctx, "u1", &dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{
			{Name: "Go", Level: models.SkillLevelBeginner, Years: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Skills, 1)
	assert.Equal(t, "Go", resp.Skills[0].Name)
}

func TestUpdateSkillsEmptyListClears(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profileService.UpdateSkills(ctx, "u1", &dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{{Name: "Python", Level: models.SkillLevelAdvanced, Years: 4}},
	})
	require.NoError(t, err)

	resp, err := f.profileService.UpdateSkills(ctx, "u1", &dto.UpdateSkillsRequest{Skills: []dto.SkillInput{}})
	require.NoError(t, err)
	assert.Empty(t, resp.Skills)

	bundle, err := f.profileService.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, bundle.Skills)
}

func TestUpdateSkillsDedupesCaseInsensitive(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, err := f.profileService.UpdateSkills(context.Background(), "u1", &dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{
			{Name: "Python", Level: models.SkillLevelAdvanced, Years: 4},
			{Name: "python", Level: models.SkillLevelBeginner, Years: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Skills, 1)
	assert.Equal(t, "Python", resp.Skills[0].Name, "выживает первый")
	assert.Equal(t, models.SkillLevelAdvanced, resp.Skills[0].Level)
}

func TestResumesAppendOnly(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	uploaded, err := f.profileService.UploadResume(ctx, "u1", &dto.UploadResumeRequest{
		FileType: "pdf",
		FileSize: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "Resume 1", uploaded.Resume.Name, "имя по умолчанию нумеруется")
	assert.Equal(t, "uploaded", uploaded.Resume.Template)

	generated, err := f.profileService.GenerateResume(ctx, "u1", &dto.GenerateResumeRequest{
		TemplateID: "modern",
		Name:       "My Modern Resume",
	})
	require.NoError(t, err)
	assert.Equal(t, "modern", generated.Resume.Template)

	bundle, err := f.profileService.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, bundle.Resumes, 2)
}

func TestGenerateResumeUnknownTemplate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.profileService.GenerateResume(context.Background(), "u1", &dto.GenerateResumeRequest{
		TemplateID: "nonexistent",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetResumeTemplates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, err := f.profileService.GetResumeTemplates(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Templates, len(testTemplates))
}
