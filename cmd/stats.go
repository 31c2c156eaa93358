package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/shapewise/internal/assessment"
	"github.com/abhisek/shapewise/internal/stages"
	"github.com/abhisek/shapewise/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's stage progression",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
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

		// The generator is only needed to start runs; stats never does.
		stageSvc := stages.NewService(st.Attempts(), nil)
		states, err := stageSvc.Overview(ctx, learner.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n\n", learner.Username)
		fmt.Printf("%-3s  %-16s  %-12s  %s\n", "#", "Stage", "Status", "Score")
		fmt.Println(strings.Repeat("─", 48))

		passed := 0
		for _, s := range states {
			score := "-"
			if s.Attempt != nil && s.Attempt.Finished() {
				score = fmt.Sprintf("%d/100", s.Attempt.Score)
			}
			if s.Status == stages.StatusPassed {
				passed++
			}
			fmt.Printf("%-3d  %-16s  %-12s  %s\n", s.Def.Number, s.Def.Title, s.Status, score)
		}
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Passed %d of %d stages\n", passed, stages.Count)

		a, err := st.PreAssessments().Get(ctx, learner.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			fmt.Println("Pre-assessment: not taken")
		case err != nil:
			return err
		case !a.Finished():
			fmt.Println("Pre-assessment: in progress")
		default:
			fmt.Printf("Pre-assessment: %d/100 (suggested level: %s)\n",
				a.Score, assessment.Placement(a.Score))
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Learner username (required)")
}
