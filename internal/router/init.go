package router

import (
	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/container"
	pginfra "github.com/taskhive/taskhive/internal/infrastructure/postgres"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(container.GetPGPool())
	projects := pginfra.NewProjectRepository(container.GetPGPool())
	tasks := pginfra.NewTaskRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, jwt, container.GetRedis(), logger)
	userSvc := application.NewUserService(users)
	projectSvc := application.NewProjectService(projects, users, logger)
	taskSvc := application.NewTaskService(tasks, projects, logger, container.GetES(), cfg.ESTasksIndex)
	dashSvc := application.NewDashboardService(users, projects, tasks)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)

	r.Add(
		modules.NewAuthModule(authHandler, jwt),
		modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt),
		modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), jwt),
		modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt),
		modules.NewDashboardModule(handlers.NewDashboardHandler(dashSvc, logger), jwt),
	)
	r.Add(modules.NewDebugModule(container.GetPromRegistry()))
}
