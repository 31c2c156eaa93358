package cmd

import (
	"github.com/abhisek/shapewise/internal/app"
	"github.com/abhisek/shapewise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shapewise",
	Short: "Terminal tutor for geometry areas",
	Long:  "Shapewise — a terminal app that teaches area computation through ten unlockable stages, from naming shapes to mixed review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		username, _ := cmd.Flags().GetString("user")
		ontology, _ := cmd.Flags().GetString("ontology")
		return app.Run(app.Options{
			DBPath:       dbPath,
			Username:     username,
			OntologyPath: ontology,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SHAPEWISE_DB env var)")
	rootCmd.Flags().String("user", "", "Sign in as this learner, skipping the welcome screen")
	rootCmd.Flags().String("ontology", "", "OWL/RDF file with hint text overrides (overrides SHAPEWISE_ONTOLOGY env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(hintsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SHAPEWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
