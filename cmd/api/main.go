package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrm-backend-go/internal/handler/http"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/cron"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/email"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/hrm-backend-go/internal/service/attendance"
	auditService "github.com/peoplecore/hrm-backend-go/internal/service/audit"
	authService "github.com/peoplecore/hrm-backend-go/internal/service/auth"
	correctionService "github.com/peoplecore/hrm-backend-go/internal/service/correction"
	dashboardService "github.com/peoplecore/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/peoplecore/hrm-backend-go/internal/service/employee"
	leaveService "github.com/peoplecore/hrm-backend-go/internal/service/leave"
	payrollService "github.com/peoplecore/hrm-backend-go/internal/service/payroll"
	reportService "github.com/peoplecore/hrm-backend-go/internal/service/report"
	settingService "github.com/peoplecore/hrm-backend-go/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	officeSettingRepo := postgresql.NewOfficeSettingRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	auditor := auditService.NewRecorder(auditLogRepo)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, emailService, auditor)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaveRepo, officeSettingRepo, auditor)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, attendanceRepo, auditor)
	correctionSvc := correctionService.NewCorrectionService(db, correctionRepo, attendanceRepo, auditor)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, emailService, auditor)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo, userRepo, auditor)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	settingSvc := settingService.NewSettingService(officeSettingRepo, auditor)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, leaveRepo, correctionRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Correction: appHTTP.NewCorrectionHandler(correctionSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, auditor),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, cfg.Jobs).RegisterJobs(scheduler)
	cron.NewAccrualJobs(employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown error:", err)
	}
}
