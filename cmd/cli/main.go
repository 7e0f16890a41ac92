package main

import (
	"fmt"
	"os"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/store/client"
	"github.com/de-tools/hospital-atlas/pkg/store/sql"
)

func main() {
	backends := dashboard.NewBackendRegistry()
	for profileType, factory := range map[domain.ProfileType]dashboard.BackendFactory{
		domain.ProfileTypeAPI:      client.BackendFactory,
		domain.ProfileTypeDatabase: sql.BackendFactory,
	} {
		if err := backends.Register(profileType, factory); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Backends: backends,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
