package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/shapewise/internal/hints"
	"github.com/spf13/cobra"
)

var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Print the hint texts, with ontology overrides applied",
	Long: `Prints every hint the app can show, resolved the same way the TUI
resolves them: ontology overrides first, built-in texts as fallback.
Useful for checking that an OWL/RDF file is picked up correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("ontology")
		if path == "" {
			path = os.Getenv("SHAPEWISE_ONTOLOGY")
		}

		var provider hints.Provider = hints.Static{}
		if path != "" {
			ont, err := hints.LoadOntologyFile(path)
			if err != nil {
				return fmt.Errorf("load ontology: %w", err)
			}
			fmt.Printf("Ontology: %s (%d hint(s) defined)\n\n", path, ont.Len())
			provider = ont
		}

		names := []string{
			hints.HintUnits,
			hints.HintIdentify,
			hints.HintRectangle,
			hints.HintSquare,
			hints.HintTriangle,
			hints.HintCircle,
			hints.HintEllipse,
			hints.HintParallelogram,
			hints.HintRhombus,
			hints.HintTrapezium,
		}
		for _, name := range names {
			fmt.Printf("%-20s %s\n", name, provider.HintText(name, hints.Default(name)))
		}
		return nil
	},
}

func init() {
	hintsCmd.Flags().String("ontology", "", "OWL/RDF file with hint overrides")
}
