package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"unijobs_backend/internal/models"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-type': student или recruiter
	mustRegister("is-user-type", validateUserType)

	// 'is-skill-level': уровень навыка из фиксированного набора
	mustRegister("is-skill-level", validateSkillLevel)

	// 'is-application-status': статус отклика из фиксированного набора
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserType(fl validator.FieldLevel) bool {
	switch models.UserType(fl.Field().String()) {
	case models.UserTypeStudent, models.UserTypeRecruiter:
		return true
	}
	return false
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	switch models.SkillLevel(fl.Field().String()) {
	case models.SkillLevelBeginner, models.SkillLevelIntermediate,
		models.SkillLevelAdvanced, models.SkillLevelExpert:
		return true
	}
	return false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	switch models.ApplicationStatus(fl.Field().String()) {
	case models.ApplicationStatusApplied, models.ApplicationStatusUnderReview,
		models.ApplicationStatusInterview, models.ApplicationStatusOffered,
		models.ApplicationStatusRejected:
		return true
	}
	return false
}
