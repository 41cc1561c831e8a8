// Command createtoken mints an access token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cmlabs-hris/hris-overtime-go/internal/config"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id (supervisor user id for manager tokens)")
	employeeID := flag.String("employee", "", "employee id, empty for none")
	role := flag.String("role", string(user.RoleEmployee), "owner, manager or employee")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	var employee *string
	if *employeeID != "" {
		employee = employeeID
	}

	token, _, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
		GenerateAccessToken(*userID, employee, user.Role(*role))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
