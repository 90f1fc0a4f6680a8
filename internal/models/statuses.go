package models

type UserType string
type SkillLevel string
type ApplicationStatus string
type ToastSeverity string

const (
	UserTypeStudent   UserType = "student"
	UserTypeRecruiter UserType = "recruiter"

	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"

	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusInterview   ApplicationStatus = "Interview"
	ApplicationStatusOffered     ApplicationStatus = "Offered"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"

	ToastSeveritySuccess ToastSeverity = "success"
	ToastSeverityError   ToastSeverity = "error"
	ToastSeverityInfo    ToastSeverity = "info"
	ToastSeverityWarning ToastSeverity = "warning"
)

// StatusColor возвращает цветовую метку статуса отклика для UI
func (s ApplicationStatus) StatusColor() string {
	switch s {
	case ApplicationStatusApplied:
		return "info"
	case ApplicationStatusUnderReview:
		return "warning"
	case ApplicationStatusInterview:
		return "primary"
	case ApplicationStatusOffered:
		return "success"
	case ApplicationStatusRejected:
		return "error"
	default:
		return "default"
	}
}
