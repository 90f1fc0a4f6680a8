package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/models"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/internal/validator"
)

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:           "student@test.edu",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Test",
		LastName:        "Student",
		UserType:        models.UserTypeStudent,
		College:         "Test College",
	}
}

func TestRegisterRequestValid(t *testing.T) {
	t.Parallel()
	v := validator.New()

	req := validRegisterRequest()
	assert.NoError(t, v.Validate(&req))
}

func TestRegisterRequestFieldErrorsUseJSONNames(t *testing.T) {
	t.Parallel()
	v := validator.New()

	req := validRegisterRequest()
	req.Email = "not-an-email"
	req.ConfirmPassword = "different"

	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*validator.ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "confirmPassword")
}

func TestRegisterRequestShortPassword(t *testing.T) {
	t.Parallel()
	v := validator.New()

	req := validRegisterRequest()
	req.Password = "12345"
	req.ConfirmPassword = "12345"

	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*validator.ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "password")
}

func TestUserTypeRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	req := validRegisterRequest()
	req.UserType = "wizard"

	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*validator.ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "userType")
}

func TestConditionalCollegeAndCompany(t *testing.T) {
	t.Parallel()
	v := validator.New()

	// Студент без вуза - ошибка
	student := validRegisterRequest()
	student.College = ""
	require.Error(t, v.Validate(&student))

	// Рекрутер без компании - ошибка
	recruiter := validRegisterRequest()
	recruiter.UserType = models.UserTypeRecruiter
	recruiter.College = ""
	recruiter.Company = ""
	require.Error(t, v.Validate(&recruiter))

	recruiter.Company = "TechCorp Solutions"
	assert.NoError(t, v.Validate(&recruiter))
}

func TestSkillLevelRule(t *testing.T) {
	t.Parallel()
	v := validator.New()

	ok := dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{{Name: "Go", Level: models.SkillLevelBeginner, Years: 1}},
	}
	assert.NoError(t, v.Validate(&ok))

	bad := dto.UpdateSkillsRequest{
		Skills: []dto.SkillInput{{Name: "Go", Level: "Guru", Years: 1}},
	}
	require.Error(t, v.Validate(&bad))
}
