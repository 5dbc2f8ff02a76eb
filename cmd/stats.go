package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obinna/prepcli/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent practice tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sessions, err := st.EventRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No tests yet. Run 'prepcli' to start practicing.")
			return nil
		}

		fmt.Printf("%-11s  %-32s  %5s  %7s  %6s\n",
			"Date", "Test", "Qs", "Time", "Score")
		fmt.Println(strings.Repeat("─", 70))

		var totalScore float64
		for _, s := range sessions {
			name := s.ExamName + " · " + s.SubjectName
			if len(name) > 32 {
				name = name[:32]
			}
			fmt.Printf("%-11s  %-32s  %5d  %4d:%02d  %5.0f%%\n",
				s.Timestamp.Local().Format("2006-01-02"),
				name,
				s.QuestionCount,
				s.DurationSecs/60, s.DurationSecs%60,
				s.Score,
			)
			totalScore += s.Score
		}

		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%d tests, average score %.1f%%\n",
			len(sessions), totalScore/float64(len(sessions)))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of tests to show")
}
