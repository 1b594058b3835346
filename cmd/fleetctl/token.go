package main

import (
	"fmt"
	"time"

	"fleet-dispatch/internal/domain/auth"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"
	"fleet-dispatch/internal/pkg/jwt"

	"github.com/urfave/cli/v2"
)

var tokenCmd = &cli.Command{
	Name:  "token",
	Usage: "Mints a bearer token signed with JWT_SECRET, for development and testing",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sub", Usage: "Subject: customer or operator id", Required: true},
		&cli.StringFlag{Name: "role", Usage: "One of customer, operator, admin", Required: true},
		&cli.DurationFlag{Name: "ttl", Usage: "Token lifetime (defaults to JWT_DURATION)"},
	},
	Action: tokenAction,
}

func tokenAction(c *cli.Context) error {
	role, err := auth.NewRole(c.String("role"))
	if err != nil {
		return err
	}
	if _, err := auth.NewPrincipal(c.String("sub"), role); err != nil {
		return err
	}

	jwtCfg, err := config.LoadJWTConfig()
	if err != nil {
		return err
	}
	ttl := c.Duration("ttl")
	if ttl == 0 {
		if ttl, err = time.ParseDuration(jwtCfg.Duration); err != nil {
			return errs.Wrap(err, "invalid JWT_DURATION")
		}
	}

	token, err := jwt.NewService(jwtCfg.Secret, ttl).GenerateToken(c.String("sub"), role)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}
