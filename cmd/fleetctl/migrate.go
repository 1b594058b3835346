package main

import (
	"fmt"
	"os"

	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/urfave/cli/v2"
)

var dirFlag = &cli.StringFlag{
	Name:    "dir",
	Value:   "migrations",
	Usage:   "Path of the migrations directory (must contain atlas.sum)",
	EnvVars: []string{"FLEETCTL_MIGRATIONS_DIR"},
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Manages the database schema with Atlas",
	Subcommands: []*cli.Command{
		{
			Name:   "apply",
			Usage:  "Applies pending migrations",
			Flags:  []cli.Flag{dirFlag, &cli.BoolFlag{Name: "dry-run", Usage: "Print the plan without executing it"}},
			Action: migrateApplyAction,
		},
		{
			Name:   "status",
			Usage:  "Shows applied and pending migrations",
			Flags:  []cli.Flag{dirFlag},
			Action: migrateStatusAction,
		},
	},
}

// newAtlasClient copies the migrations into a temporary Atlas working directory.
// The atlas binary must be on PATH.
func newAtlasClient(dir string) (*atlasexec.Client, func() error, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to prepare atlas working directory")
	}
	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		_ = workdir.Close()
		return nil, nil, errs.Wrap(err, "failed to create atlas client")
	}
	return client, workdir.Close, nil
}

func migrateApplyAction(c *cli.Context) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	client, closeDir, err := newAtlasClient(c.String(dirFlag.Name))
	if err != nil {
		return err
	}
	defer func() { _ = closeDir() }()

	res, err := client.MigrateApply(c.Context, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: c.Bool("dry-run"),
	})
	if err != nil {
		return errs.Wrap(err, "migrate apply failed")
	}

	for _, f := range res.Applied {
		fmt.Fprintf(c.App.Writer, "applied %s\n", f.Name)
	}
	fmt.Fprintf(c.App.Writer, "schema at version %q (%d applied)\n", res.Target, len(res.Applied))
	return nil
}

func migrateStatusAction(c *cli.Context) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	client, closeDir, err := newAtlasClient(c.String(dirFlag.Name))
	if err != nil {
		return err
	}
	defer func() { _ = closeDir() }()

	status, err := client.MigrateStatus(c.Context, &atlasexec.MigrateStatusParams{
		URL: dbCfg.BuildDSN(),
	})
	if err != nil {
		return errs.Wrap(err, "migrate status failed")
	}

	fmt.Fprintf(c.App.Writer, "status: %s\ncurrent: %q\nnext: %q\n", status.Status, status.Current, status.Next)
	for _, f := range status.Pending {
		fmt.Fprintf(c.App.Writer, "pending %s\n", f.Name)
	}
	return nil
}
