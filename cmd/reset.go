package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/shapewise/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's attempts and pre-assessment",
	Long:  "Wipes all stage attempts and the pre-assessment for one learner so they can start over. The profile itself is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Printf("This deletes all progress for %q. Type the username to confirm: ", username)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != username {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		learner, err := st.Learners().GetOrCreate(ctx, username)
		if err != nil {
			return err
		}

		n, err := st.Attempts().DeleteByLearner(ctx, learner.ID)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}

		if err := st.PreAssessments().Delete(ctx, learner.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("delete pre-assessment: %w", err)
		}

		fmt.Printf("Deleted %d stage attempt(s) and the pre-assessment for %s.\n", n, learner.Username)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", "", "Learner username (required)")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
