package main

import (
	"fmt"
	"net/http"

	"github.com/crewops/crewops-backend-go/internal/config"
	appHTTP "github.com/crewops/crewops-backend-go/internal/handler/http"
	"github.com/crewops/crewops-backend-go/internal/pkg/database"
	"github.com/crewops/crewops-backend-go/internal/pkg/jwt"
	"github.com/crewops/crewops-backend-go/internal/pkg/rolecache"
	"github.com/crewops/crewops-backend-go/internal/repository/postgresql"
	timesheetService "github.com/crewops/crewops-backend-go/internal/service/timesheet"
	workerService "github.com/crewops/crewops-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	roleCache := rolecache.New(cfg.RoleCache.TTL)

	workerSvc := workerService.NewWorkerService(workerRepo, roleCache)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, workerRepo, cfg.Timesheet.ClockPolicy)

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		workerHandler,
		roleCache,
		workerRepo,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
