package models

// Job - вакансия в ленте
type Job struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Type       string   `json:"type"` // Internship, Full-time, Part-time
	Skills     []string `json:"skills"`
	Salary     string   `json:"salary,omitempty"`
	PostedDate string   `json:"postedDate"`
}

// Application - отклик аккаунта на вакансию
type Application struct {
	ID          string            `json:"id"`
	UserID      string            `json:"-"`
	JobID       string            `json:"jobId"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Status      ApplicationStatus `json:"status"`
	StatusColor string            `json:"statusColor"`
	AppliedDate string            `json:"appliedDate"`
}

// SavedJob - закладка на вакансию
type SavedJob struct {
	ID        string `json:"id"` // совпадает с Job.ID
	UserID    string `json:"-"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	SavedDate string `json:"savedDate"`
}

// JobFilters - фильтры ленты вакансий
type JobFilters struct {
	Location string   `json:"location,omitempty" form:"location"`
	Type     string   `json:"type,omitempty" form:"type"`
	Skills   []string `json:"skills,omitempty" form:"skills[]"`
	Company  string   `json:"company,omitempty" form:"company"`
}
