package command

import (
	"context"
	"fmt"

	"github.com/plemya-health/healthfeed/checkins"
	"github.com/plemya-health/healthfeed/feed"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/spf13/cobra"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results [userId]",
	Short: "List the unified result feed for a user",
	Long:  "The results command merges body scans, questionnaires and lab panels into one date-descending feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userId := args[0]
		return Run(func(service feed.Service) error {
			return listResults(service, userId)
		})
	},
}

func listResults(service feed.Service, userId string) error {
	results, err := service.AllResults(context.TODO(), userId, resultsLimit)
	if err != nil {
		return err
	}

	for _, result := range results {
		score := "-"
		if result.Score != nil {
			score = fmt.Sprintf("%g", *result.Score)
		}
		fmt.Printf("%s %s %s %s %s\n", result.Id, result.Kind, result.Date, score, pointer.ToString(result.Title))
	}
	fmt.Printf("Found %v results\n", len(results))

	return nil
}

var streakCmd = &cobra.Command{
	Use:   "streak [userId]",
	Short: "Show the current daily check-in streak for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userId := args[0]
		return Run(func(service checkins.Service) error {
			streak, err := service.Streak(context.TODO(), userId)
			if err != nil {
				return err
			}
			fmt.Printf("Current streak: %v days\n", streak)
			return nil
		})
	},
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 20, "Maximum number of results")
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(streakCmd)
}
