package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/tuankiet2005-art/CSW303-Project/internal/config"
	appHTTP "github.com/tuankiet2005-art/CSW303-Project/internal/handler/http"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/jwt"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
	advanceService "github.com/tuankiet2005-art/CSW303-Project/internal/service/advance"
	attendanceService "github.com/tuankiet2005-art/CSW303-Project/internal/service/attendance"
	authService "github.com/tuankiet2005-art/CSW303-Project/internal/service/auth"
	leaveService "github.com/tuankiet2005-art/CSW303-Project/internal/service/leave"
	payrollService "github.com/tuankiet2005-art/CSW303-Project/internal/service/payroll"
	userService "github.com/tuankiet2005-art/CSW303-Project/internal/service/user"
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

	ctx := context.Background()
	if err := db.Migrate(ctx, postgresql.Schema); err != nil {
		log.Fatal("Failed to apply schema: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	advanceRequestRepo := postgresql.NewAdvanceRequestRepository(db)

	if err := userService.EnsureSeedManager(ctx, userRepo, cfg.Seed.ManagerUsername, cfg.Seed.ManagerPassword, cfg.Seed.ManagerName); err != nil {
		log.Fatal("Failed to seed manager account: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, salaryRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, userRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRequestRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(userRepo, leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(db, userRepo, salaryRepo, leaveRequestRepo, advanceRequestRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
