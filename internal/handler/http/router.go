package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Correction CorrectionHandler
	Employee   EmployeeHandler
	Payroll    PayrollHandler
	Report     ReportHandler
	Setting    SettingHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)

				r.With(middleware.RequireAdmin).Post("/admin-reset-password", h.Auth.AdminResetPassword)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/", h.Leave.ListMine)

				r.With(middleware.RequireReviewer).Post("/{id}/review", h.Leave.Review)
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/", h.Correction.Submit)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Correction.List)
					r.Post("/{id}/review", h.Correction.Review)
				})
			})

			r.Route("/team", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleManager, user.RoleHR, user.RoleSuperAdmin))
				r.Get("/", h.Employee.ListTeam)
				r.Get("/attendance", h.Attendance.TeamToday)
				r.Get("/leaves", h.Leave.ListTeam)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/managers", h.Employee.ListManagers)
					r.Get("/{id}", h.Employee.Get)
					r.Patch("/{id}/active", h.Employee.SetActive)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslips", h.Payroll.ListMyPayslips)
				r.Get("/payslips/{id}/pdf", h.Payroll.DownloadPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/records", h.Payroll.ListRecords)
				})
			})

			// Admin surfaces
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/admin/leaves", h.Leave.ListAll)
				r.Get("/admin/dashboard", h.Dashboard.Stats)
				r.Get("/admin/audit-logs", h.Dashboard.AuditLogs)
				r.Get("/admin/reports/attendance", h.Report.MonthlyAttendance)
				r.Get("/admin/settings/office", h.Setting.Get)
				r.Put("/admin/settings/office", h.Setting.Update)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
