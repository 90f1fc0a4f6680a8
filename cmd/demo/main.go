// Демонстрация клиентской модели состояния: слайсы поверх сервисов,
// без HTTP. Повторяет типичный сценарий SPA: вход, загрузка профиля,
// правка навыков, отклик на вакансию.
package main

import (
	"context"
	"fmt"
	"os"

	"unijobs_backend/internal/app"
	"unijobs_backend/internal/config"
	"unijobs_backend/internal/logger"
	"unijobs_backend/internal/models"
	"unijobs_backend/internal/repositories"
	"unijobs_backend/internal/services"
	"unijobs_backend/internal/services/dto"
	"unijobs_backend/internal/session"
	"unijobs_backend/internal/state"
	"unijobs_backend/internal/store"
	"unijobs_backend/internal/workers"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	dataStore := store.New(app.ResumeTemplateCatalog)
	if err := app.SeedStore(dataStore); err != nil {
		logger.Fatal("Failed to seed store", "error", err)
	}

	latency := services.NewLatencySimulator(cfg.Mock.LatencyMinMS, cfg.Mock.LatencyMaxMS)
	authService := services.NewAuthService(
		repositories.NewAccountRepository(dataStore),
		repositories.NewResetTokenRepository(dataStore),
		&app.MockEmailProvider{},
		nil,
		latency,
	)
	profileService := services.NewProfileService(repositories.NewProfileRepository(dataStore), latency)
	jobService := services.NewJobService(repositories.NewJobRepository(dataStore), latency)

	storage, err := session.NewStorage(cfg.Session.FilePath)
	if err != nil {
		logger.Fatal("Failed to open session storage", "error", err)
	}

	authSlice := state.NewAuthSlice(authService, storage)
	profileSlice := state.NewProfileSlice(profileService)
	jobSlice := state.NewJobSlice(jobService)
	ui := state.NewUISlice()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Фоновая уборка истекших уведомлений, как в реальном клиенте
	workers.NewToastWorker(ui, 0).Start(ctx)

	authSlice.Login(ctx, "john.doe@iitdelhi.ac.in", "password123").Wait()
	if msg := authSlice.Err(); msg != "" {
		ui.ShowToast(msg, models.ToastSeverityError, 0)
		dumpToasts(ui)
		os.Exit(1)
	}
	account := authSlice.Account()
	ui.ShowToast("Login successful", models.ToastSeveritySuccess, 0)
	fmt.Printf("logged in as %s %s (%s)\n", account.FirstName, account.LastName, account.UserType)

	profileSlice.SetAccount(account.ID)
	jobSlice.SetAccount(account.ID)

	profileSlice.Fetch(ctx).Wait()
	bundle := profileSlice.Snapshot()
	fmt.Printf("profile: %d education entries, %d skills, %d resumes\n",
		len(bundle.Education), len(bundle.Skills), len(bundle.Resumes))

	if !bundle.HasSkill("Go") {
		op := profileSlice.UpdateSkills(ctx, &dto.UpdateSkillsRequest{
			Skills: append(skillInputs(bundle.Skills), dto.SkillInput{
				Name:  "Go",
				Level: models.SkillLevelBeginner,
				Years: 1,
			}),
		})
		op.Wait()
		if msg := profileSlice.Err(); msg != "" {
			ui.ShowToast(msg, models.ToastSeverityError, 0)
		} else {
			ui.ShowToast("Skills updated", models.ToastSeveritySuccess, 0)
		}
	}

	jobSlice.SetFilters(models.JobFilters{Type: "Internship"})
	jobSlice.Fetch(ctx).Wait()
	jobs := jobSlice.Jobs()
	fmt.Printf("internships available: %d\n", len(jobs))

	if len(jobs) > 0 {
		jobSlice.Apply(ctx, &dto.ApplyRequest{JobID: jobs[0].ID}).Wait()
		if msg := jobSlice.Err(); msg != "" {
			ui.ShowToast(msg, models.ToastSeverityError, 0)
		} else {
			ui.ShowToast("Application submitted", models.ToastSeveritySuccess, 0)
		}
	}

	fmt.Printf("applications: %d, saved jobs: %d\n",
		len(jobSlice.Applications()), len(jobSlice.SavedJobs()))

	dumpToasts(ui)

	authSlice.Logout()
	fmt.Println("logged out, session cleared")
}

func skillInputs(skills []models.Skill) []dto.SkillInput {
	inputs := make([]dto.SkillInput, 0, len(skills))
	for _, s := range skills {
		inputs = append(inputs, dto.SkillInput{
			Name:  s.Name,
			Level: s.Level,
			Years: s.Years,
		})
	}
	return inputs
}

func dumpToasts(ui *state.UISlice) {
	for _, t := range ui.Toasts() {
		fmt.Printf("[%s] %s\n", t.Severity, t.Message)
	}
}
