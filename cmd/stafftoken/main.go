// Command stafftoken prints a bearer token for the staff-only endpoints,
// signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	subject := flag.String("subject", "staff", "token subject, usually the staff member's name")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to JWT_DURATION")
	flag.Parse()

	if err := run(*subject, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, "stafftoken:", err)
		os.Exit(1)
	}
}

func run(subject string, ttl time.Duration) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}
	if ttl == 0 {
		d, err := time.ParseDuration(cfg.Duration)
		if err != nil {
			return fmt.Errorf("invalid JWT_DURATION: %w", err)
		}
		ttl = d
	}

	token, err := jwt.NewService(cfg.Secret, ttl).GenerateToken(subject, jwt.RoleStaff)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
