package app

import (
	"fmt"
	"time"

	"unijobs_backend/internal/auth"
	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/models"
	"unijobs_backend/internal/store"
)

// ResumeTemplateCatalog - статический каталог шаблонов резюме
var ResumeTemplateCatalog = []models.ResumeTemplate{
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean and contemporary design with a sidebar for skills and contact info",
		Thumbnail:   "modern-template.jpg",
	},
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Traditional layout with a focus on experience and achievements",
		Thumbnail:   "professional-template.jpg",
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Unique design with color accents, perfect for design and creative roles",
		Thumbnail:   "creative-template.jpg",
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Simple and elegant design with plenty of white space",
		Thumbnail:   "minimal-template.jpg",
	},
	{
		ID:          "executive",
		Name:        "Executive",
		Description: "Sophisticated design for senior positions and leadership roles",
		Thumbnail:   "executive-template.jpg",
	},
}

type seedAccount struct {
	account  models.Account
	password string
	bundle   *models.ProfileBundle
}

// SeedStore загружает демо-данные: три аккаунта с профилями,
// лента вакансий и стартовые отклики/закладки первого студента.
func SeedStore(s *store.Store) error {
	accounts := seedAccounts()

	s.Lock()
	defer s.Unlock()

	for i := range accounts {
		hash, err := auth.HashPassword(accounts[i].password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", accounts[i].account.Email, err)
		}

		acc := accounts[i].account
		acc.PasswordHash = hash
		s.Accounts = append(s.Accounts, &acc)

		if accounts[i].bundle != nil {
			s.Profiles[acc.ID] = accounts[i].bundle
		}
	}

	for _, j := range seedJobs() {
		job := j
		s.Jobs = append(s.Jobs, &job)
	}
	for _, a := range seedApplications() {
		application := a
		s.Applications = append(s.Applications, &application)
	}
	for _, sj := range seedSavedJobs() {
		saved := sj
		s.SavedJobs = append(s.SavedJobs, &saved)
	}

	logger.Info("Store seeded with demo data",
		"accounts", len(s.Accounts),
		"jobs", len(s.Jobs),
		"templates", len(s.Templates),
	)
	return nil
}

func seedAccounts() []seedAccount {
	return []seedAccount{
		{
			account: models.Account{
				ID:             "1",
				Email:          "john.doe@iitdelhi.ac.in",
				FirstName:      "John",
				LastName:       "Doe",
				UserType:       models.UserTypeStudent,
				College:        "IIT Delhi",
				GraduationYear: "2025",
				CreatedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				IsVerified:     true,
			},
			password: "password123",
			bundle: &models.ProfileBundle{
				Profile: models.Profile{
					Bio:         "Computer Science student passionate about web development and AI.",
					Phone:       "+91 9876543210",
					Address:     "123 Campus Road, New Delhi",
					Website:     "johndoe.dev",
					Github:      "github.com/johndoe",
					Linkedin:    "linkedin.com/in/johndoe",
					DateOfBirth: "2000-05-15",
				},
				Education: []models.EducationEntry{
					{
						ID:          "edu1",
						Institution: "IIT Delhi",
						Degree:      "B.Tech",
						Field:       "Computer Science",
						StartDate:   "2021-08",
						EndDate:     "2025-05",
						Grade:       "8.7 CGPA",
						Activities:  "Member of Coding Club, Participated in Smart India Hackathon",
						Description: "Specializing in Artificial Intelligence and Machine Learning",
					},
					{
						ID:          "edu2",
						Institution: "Delhi Public School",
						Degree:      "Higher Secondary",
						Field:       "Science",
						StartDate:   "2019-04",
						EndDate:     "2021-03",
						Grade:       "95%",
						Activities:  "School Captain, Science Club Lead",
						Description: "Graduated with distinction in Physics and Mathematics",
					},
				},
				Skills: []models.Skill{
					{Name: "JavaScript", Level: models.SkillLevelAdvanced, Years: 3},
					{Name: "React", Level: models.SkillLevelIntermediate, Years: 2},
					{Name: "Python", Level: models.SkillLevelAdvanced, Years: 4},
					{Name: "Machine Learning", Level: models.SkillLevelIntermediate, Years: 2},
					{Name: "Node.js", Level: models.SkillLevelIntermediate, Years: 2},
					{Name: "SQL", Level: models.SkillLevelIntermediate, Years: 3},
				},
				Resumes: []models.Resume{
					{
						ID:          "res1",
						Name:        "Software Developer Resume",
						Template:    "modern",
						CreatedAt:   "2023-12-10",
						DownloadURL: "#",
					},
				},
			},
		},
		{
			account: models.Account{
				ID:             "2",
				Email:          "priya.sharma@nitk.edu.in",
				FirstName:      "Priya",
				LastName:       "Sharma",
				UserType:       models.UserTypeStudent,
				College:        "NIT Karnataka",
				GraduationYear: "2024",
				CreatedAt:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
				IsVerified:     true,
			},
			password: "mypassword",
			bundle: &models.ProfileBundle{
				Profile: models.Profile{
					Bio:         "Engineering student with a passion for sustainable technology.",
					Phone:       "+91 8765432109",
					Address:     "456 College Avenue, Karnataka",
					Website:     "priyasharma.tech",
					Github:      "github.com/priyasharma",
					Linkedin:    "linkedin.com/in/priyasharma",
					DateOfBirth: "2001-03-22",
				},
				Education: []models.EducationEntry{
					{
						ID:          "edu1",
						Institution: "NIT Karnataka",
						Degree:      "B.Tech",
						Field:       "Electrical Engineering",
						StartDate:   "2020-08",
						EndDate:     "2024-05",
						Grade:       "9.2 CGPA",
						Activities:  "IEEE Student Branch, Robotics Club",
						Description: "Focusing on renewable energy systems and smart grids",
					},
				},
				Skills: []models.Skill{
					{Name: "Circuit Design", Level: models.SkillLevelAdvanced, Years: 3},
					{Name: "MATLAB", Level: models.SkillLevelAdvanced, Years: 3},
					{Name: "Arduino", Level: models.SkillLevelAdvanced, Years: 4},
					{Name: "Python", Level: models.SkillLevelIntermediate, Years: 2},
					{Name: "AutoCAD", Level: models.SkillLevelIntermediate, Years: 2},
				},
				Resumes: []models.Resume{
					{
						ID:          "res1",
						Name:        "Electrical Engineer Resume",
						Template:    "professional",
						CreatedAt:   "2023-11-05",
						DownloadURL: "#",
					},
				},
			},
		},
		{
			account: models.Account{
				ID:         "3",
				Email:      "recruiter@techcorp.com",
				FirstName:  "Sarah",
				LastName:   "Wilson",
				UserType:   models.UserTypeRecruiter,
				Company:    "TechCorp Solutions",
				CreatedAt:  time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				IsVerified: true,
			},
			password: "recruiter123",
			bundle: &models.ProfileBundle{
				Profile: models.Profile{
					Bio:         "Experienced recruiter specializing in tech talent acquisition.",
					Phone:       "+91 7654321098",
					Address:     "789 Corporate Park, Bangalore",
					Website:     "sarahwilson.com",
					Linkedin:    "linkedin.com/in/sarahwilson",
					DateOfBirth: "1988-09-12",
				},
				Education: []models.EducationEntry{
					{
						ID:          "edu1",
						Institution: "University of Delhi",
						Degree:      "MBA",
						Field:       "Human Resources",
						StartDate:   "2010-07",
						EndDate:     "2012-06",
						Grade:       "A Grade",
						Description: "Specialized in Talent Acquisition and Organizational Development",
					},
					{
						ID:          "edu2",
						Institution: "St. Xavier's College",
						Degree:      "Bachelor of Arts",
						Field:       "Psychology",
						StartDate:   "2007-07",
						EndDate:     "2010-06",
						Grade:       "First Class",
						Description: "Focus on Industrial Psychology",
					},
				},
				Skills: []models.Skill{
					{Name: "Talent Acquisition", Level: models.SkillLevelExpert, Years: 10},
					{Name: "Technical Recruiting", Level: models.SkillLevelExpert, Years: 8},
					{Name: "Applicant Tracking Systems", Level: models.SkillLevelAdvanced, Years: 7},
					{Name: "LinkedIn Recruiting", Level: models.SkillLevelAdvanced, Years: 9},
					{Name: "Behavioral Interviewing", Level: models.SkillLevelExpert, Years: 10},
				},
				Resumes: []models.Resume{
					{
						ID:          "res1",
						Name:        "HR Professional Resume",
						Template:    "executive",
						CreatedAt:   "2023-10-15",
						DownloadURL: "#",
					},
				},
			},
		},
	}
}

func seedJobs() []models.Job {
	return []models.Job{
		{
			ID:         "job1",
			Title:      "Frontend Developer Intern",
			Company:    "TechCorp Solutions",
			Location:   "Bangalore",
			Type:       "Internship",
			Skills:     []string{"JavaScript", "React", "CSS"},
			Salary:     "₹25,000/month",
			PostedDate: "2024-03-01",
		},
		{
			ID:         "job2",
			Title:      "Machine Learning Engineer",
			Company:    "DataMinds AI",
			Location:   "Hyderabad",
			Type:       "Full-time",
			Skills:     []string{"Python", "Machine Learning", "SQL"},
			Salary:     "₹12 LPA",
			PostedDate: "2024-03-05",
		},
		{
			ID:         "job3",
			Title:      "Embedded Systems Intern",
			Company:    "VoltEdge Energy",
			Location:   "Pune",
			Type:       "Internship",
			Skills:     []string{"Arduino", "Circuit Design", "C"},
			Salary:     "₹20,000/month",
			PostedDate: "2024-03-08",
		},
		{
			ID:         "job4",
			Title:      "Backend Developer",
			Company:    "TechCorp Solutions",
			Location:   "Remote",
			Type:       "Full-time",
			Skills:     []string{"Node.js", "SQL", "AWS"},
			Salary:     "₹10 LPA",
			PostedDate: "2024-03-12",
		},
		{
			ID:         "job5",
			Title:      "Data Analyst (Part-time)",
			Company:    "FinSight Analytics",
			Location:   "Mumbai",
			Type:       "Part-time",
			Skills:     []string{"SQL", "Python", "Excel"},
			Salary:     "₹15,000/month",
			PostedDate: "2024-03-15",
		},
	}
}

func seedApplications() []models.Application {
	return []models.Application{
		{
			ID:          "app1",
			UserID:      "1",
			JobID:       "job1",
			Title:       "Frontend Developer Intern",
			Company:     "TechCorp Solutions",
			Status:      models.ApplicationStatusUnderReview,
			StatusColor: models.ApplicationStatusUnderReview.StatusColor(),
			AppliedDate: "2024-03-03",
		},
		{
			ID:          "app2",
			UserID:      "1",
			JobID:       "job2",
			Title:       "Machine Learning Engineer",
			Company:     "DataMinds AI",
			Status:      models.ApplicationStatusApplied,
			StatusColor: models.ApplicationStatusApplied.StatusColor(),
			AppliedDate: "2024-03-06",
		},
	}
}

func seedSavedJobs() []models.SavedJob {
	return []models.SavedJob{
		{
			ID:        "job4",
			UserID:    "1",
			Title:     "Backend Developer",
			Company:   "TechCorp Solutions",
			Location:  "Remote",
			SavedDate: "2024-03-13",
		},
	}
}
