// Command fleetctl is the operator tool for fleet-dispatch: schema migrations,
// catalog fixtures and development tokens.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var app = &cli.App{
	Name:  "fleetctl",
	Usage: "Administers a fleet-dispatch deployment",
	Commands: []*cli.Command{
		migrateCmd,
		seedCmd,
		tokenCmd,
	},
	Suggest: true,
}
