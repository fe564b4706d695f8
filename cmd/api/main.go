package main

import (
	"fmt"
	"net/http"

	"github.com/sitepulse/erp-backend-go/internal/config"
	appHTTP "github.com/sitepulse/erp-backend-go/internal/handler/http"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
	"github.com/sitepulse/erp-backend-go/internal/pkg/genai"
	"github.com/sitepulse/erp-backend-go/internal/pkg/jwt"
	"github.com/sitepulse/erp-backend-go/internal/repository/postgresql"
	adminService "github.com/sitepulse/erp-backend-go/internal/service/admin"
	authService "github.com/sitepulse/erp-backend-go/internal/service/auth"
	dashboardService "github.com/sitepulse/erp-backend-go/internal/service/dashboard"
	employeeService "github.com/sitepulse/erp-backend-go/internal/service/employee"
	expenseService "github.com/sitepulse/erp-backend-go/internal/service/expense"
	extractionService "github.com/sitepulse/erp-backend-go/internal/service/extraction"
	payrollService "github.com/sitepulse/erp-backend-go/internal/service/payroll"
	reportService "github.com/sitepulse/erp-backend-go/internal/service/report"
	taskService "github.com/sitepulse/erp-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(cfg.App.Migrations, dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	genaiClient := genai.NewClient(cfg.GenAI.BaseURL, cfg.GenAI.APIKey)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, genaiClient)
	reportSvc := reportService.NewReportService(employeeRepo, payrollSvc)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, expenseRepo, taskRepo, payrollSvc)
	adminSvc := adminService.NewAdminService(adminRepo, userRepo)
	extractionSvc := extractionService.NewExtractionService(db, employeeRepo, genaiClient)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Admin:      appHTTP.NewAdminHandler(adminSvc),
		Extraction: appHTTP.NewExtractionHandler(extractionSvc),
	}

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, cfg.App.Env, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
