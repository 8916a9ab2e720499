package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/config"
	appHTTP "github.com/bizmanage/payroll-grid-go/internal/handler/http"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/cache"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/database"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/jwt"
	"github.com/bizmanage/payroll-grid-go/internal/repository/postgresql"
	authService "github.com/bizmanage/payroll-grid-go/internal/service/auth"
	employeeService "github.com/bizmanage/payroll-grid-go/internal/service/employee"
	gridService "github.com/bizmanage/payroll-grid-go/internal/service/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/service/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db, employeeRepo)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	queryCache := cache.New(5 * time.Minute)
	sheetService := sheet.NewSheetService()

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, queryCache)
	gridSvc := gridService.NewGridService(employeeRepo, salaryRepo, sheetService, queryCache)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	salaryGridHandler := appHTTP.NewSalaryGridHandler(gridSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		salaryGridHandler,
		cfg.App.Env,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
