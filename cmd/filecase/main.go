package main

import (
	"fmt"
	"os"

	"github.com/InfoRubix/filecase-tracking-management-system/cmd/filecase/cli"
	"github.com/InfoRubix/filecase-tracking-management-system/cmd/filecase/cli/admin"
	"github.com/InfoRubix/filecase-tracking-management-system/cmd/filecase/cli/db"
	"github.com/InfoRubix/filecase-tracking-management-system/cmd/filecase/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())

	root.AddCommand(server.NewServeCommand())
	root.AddCommand(server.NewConfigCommand())
	root.AddCommand(db.NewDatabaseCommand())
	root.AddCommand(admin.NewAdminCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
