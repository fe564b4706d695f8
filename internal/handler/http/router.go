package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sitepulse/erp-backend-go/internal/handler/http/middleware"
	"github.com/sitepulse/erp-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Payroll    PayrollHandler
	Report     ReportHandler
	Expense    ExpenseHandler
	Task       TaskHandler
	Dashboard  DashboardHandler
	Admin      AdminHandler
	Extraction ExtractionHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitepulse-erp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.GetByID)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)

				r.Post("/{id}/attendance", h.Employee.MarkAttendance)
				r.Delete("/{id}/attendance/{date}", h.Employee.ClearAttendance)
				r.Put("/{id}/overtime", h.Employee.SetOvertime)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/bulk", h.Employee.BulkMarkAttendance)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.Generate)
				r.Get("/summary", h.Payroll.Summary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance", h.Report.MonthlyAttendance)
				r.Get("/attendance/export", h.Report.ExportAttendanceCSV)
				r.Get("/payroll/export", h.Report.ExportPayrollCSV)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", h.Expense.List)
				r.Post("/", h.Expense.Create)
				r.Put("/{id}", h.Expense.Update)
				r.Delete("/{id}", h.Expense.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Create)
				r.Put("/{id}", h.Task.Update)
				r.Patch("/{id}/status", h.Task.ChangeStatus)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", h.Dashboard.Summary)
				r.Get("/salary-trend", h.Dashboard.SalaryTrend)
			})

			r.Route("/extraction", func(r chi.Router) {
				r.Post("/employees", h.Extraction.Extract)
				r.Post("/employees/create", h.Extraction.ExtractAndCreate)
			})

			// Admin only
			r.Route("/admins", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Admin.List)
				r.Post("/", h.Admin.Create)
				r.Delete("/{id}", h.Admin.Delete)
			})
		})
	})
	return r
}
