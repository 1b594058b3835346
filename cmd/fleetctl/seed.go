package main

import (
	"fmt"
	"os"

	"fleet-dispatch/internal/infra/db"
	"fleet-dispatch/internal/infra/seed"
	sqlc "fleet-dispatch/internal/infra/sqlc/generated"
	"fleet-dispatch/internal/infra/uow"
	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/urfave/cli/v2"
)

var seedCmd = &cli.Command{
	Name:  "seed",
	Usage: "Upserts resources, variants and operators from a YAML fixtures file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "Path of the fixtures file",
			Required: true,
		},
	},
	Action: seedAction,
}

func seedAction(c *cli.Context) error {
	file, err := os.Open(c.String("file"))
	if err != nil {
		return errs.Wrap(err, "failed to open fixtures")
	}
	defer file.Close()

	fixtures, err := seed.Parse(file)
	if err != nil {
		return err
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	cfg := config.Config{DB: dbCfg}
	counts, err := seed.Apply(c.Context, uow.NewPostgresUoW(pool, q, cfg), q, fixtures)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "seeded %d resources, %d variants, %d operators\n",
		counts.Resources, counts.Variants, counts.Operators)
	return nil
}
