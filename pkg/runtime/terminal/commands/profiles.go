package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	session  Session
	reporter *export.Reporter
}

func NewProfilesCmd(session Session, reporter *export.Reporter) *cobra.Command {
	pc := &ProfilesCmd{session: session, reporter: reporter}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the connection profiles",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	profiles, err := pc.session.Profiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No connection profiles found")
		return nil
	}

	view := export.View{
		Title:   "Profils de connexion",
		Columns: []string{"Nom", "Type", "Pilote", "Cible"},
	}
	for _, p := range profiles {
		view.Rows = append(view.Rows, []string{p.Name, string(p.Type), p.Driver, target(p)})
	}
	return pc.reporter.Handle(view)
}

// target hides database credentials.
func target(p domain.ConnectionProfile) string {
	if p.Type != domain.ProfileTypeDatabase {
		return p.Host
	}
	if u, err := url.Parse(p.DatabaseURL); err == nil && u.Host != "" {
		return u.Redacted()
	}
	// driver DSNs such as user:pass@account/db are not URLs
	if _, rest, ok := strings.Cut(p.DatabaseURL, "@"); ok {
		return "xxxxx@" + rest
	}
	return p.DatabaseURL
}
