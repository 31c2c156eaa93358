package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a shape (no database)",
	Long: `Generate and interactively answer questions for a specific shape.

This is a stateless developer tool — no database, no progression, no score
recorded. Useful for checking question wording and grading behavior.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("shape", "mixed", "Shape kind: shape-basics, rectangle, square, triangle, circle, ellipse, parallelogram, rhombus, trapezium or mixed")
	previewCmd.Flags().String("difficulty", "Beginner", "Difficulty tier: Beginner, Intermediate or Advanced")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 means time-based)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	shapeVal, _ := cmd.Flags().GetString("shape")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")

	kind := problemgen.ShapeKind(strings.ToLower(shapeVal))
	difficulty := problemgen.Difficulty(diffVal)
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be Beginner, Intermediate or Advanced", diffVal)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := problemgen.New(rand.NewSource(seed))

	questions, err := gen.GenerateRun(kind, difficulty, count)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Shape: %s (%s), %d questions\n\n", kind, difficulty, count)

	var correct int
	for i, q := range questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, count)
		fmt.Println(q.Prompt)
		if q.Format == problemgen.FormatMultipleChoice {
			for j, c := range q.Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}

		// Re-prompt on rejected input, same as the TUI does.
		for {
			fmt.Print("\nYour answer: ")
			if !scanner.Scan() {
				fmt.Println("\n(input closed)")
				return nil
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "" {
				fmt.Println("(skipped)")
				break
			}

			// Numbered multiple choice answers map back to the option text.
			if q.Format == problemgen.FormatMultipleChoice {
				var n int
				if _, err := fmt.Sscanf(answer, "%d", &n); err == nil && n >= 1 && n <= len(q.Choices) {
					answer = q.Choices[n-1]
				}
			}

			res := grader.Grade(q, answer)
			switch res.Reason {
			case grader.ReasonMissingUnit, grader.ReasonBadUnit, grader.ReasonNotANumber:
				fmt.Println(res.Message)
				continue
			}
			if res.Correct {
				correct++
				fmt.Println("✓ Correct!")
			} else if q.Format == problemgen.FormatMultipleChoice {
				fmt.Printf("✗ Wrong. Answer: %s\n", q.Correct)
			} else {
				fmt.Printf("✗ Wrong. Answer: %g cm²\n", q.Answer)
			}
			break
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
