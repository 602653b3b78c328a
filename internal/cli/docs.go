package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"babysteps/internal/domain"
	"babysteps/internal/milestones"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List the knowledge base documents",
	RunE:  runDocs,
}

var (
	milestonesAge   int
	milestonesChild string
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show typical milestones for an age or a child's progress",
	RunE:  runMilestones,
}

var milestonesAchieveCmd = &cobra.Command{
	Use:   "achieve [milestone-id]",
	Short: "Mark a milestone as reached for a child",
	Args:  cobra.ExactArgs(1),
	RunE:  runMilestonesAchieve,
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
	milestonesCmd.AddCommand(milestonesAchieveCmd)
	milestonesCmd.Flags().IntVar(&milestonesAge, "age", 0, "age in months")
	milestonesCmd.Flags().StringVar(&milestonesChild, "child", "", "child profile ID")
	milestonesAchieveCmd.Flags().StringVar(&milestonesChild, "child", "", "child profile ID")
	_ = milestonesAchieveCmd.MarkFlagRequired("child")
}

func runDocs(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	for _, d := range app.Corpus.Documents() {
		ageRange := d.AgeRange
		if ageRange == "" {
			ageRange = "all ages"
		}
		fmt.Printf("%-24s %-12s %-12s %s\n", d.ID, d.Category, ageRange, d.Title)
	}
	return nil
}

func runMilestones(cmd *cobra.Command, _ []string) error {
	age := milestonesAge
	achieved := map[string]bool{}

	if milestonesChild != "" {
		app, err := loadApp()
		if err != nil {
			return err
		}
		defer app.Close()

		child, err := app.Children.Get(cmd.Context(), milestonesChild)
		if err != nil {
			return fmt.Errorf("child %s: %w", milestonesChild, err)
		}
		if !cmd.Flags().Changed("age") {
			if !child.AgeKnown() {
				return fmt.Errorf("%s has no birthday on record; pass --age", child.Name)
			}
			age = domain.AgeInMonths(child.Birthday, time.Now())
		}
		achieved = milestones.AchievedSet(child)
	}

	ms := milestones.ForAge(age)
	if len(ms) == 0 {
		fmt.Printf("No reference milestones for %d months.\n", age)
		return nil
	}
	bracket := milestones.BracketFor(age)
	if bracket.End > 0 {
		fmt.Printf("Milestones typically reached between %d and %d months:\n", bracket.Start, bracket.End)
	} else {
		fmt.Printf("Milestones typically reached from %d months:\n", bracket.Start)
	}
	for _, c := range []milestones.Category{
		milestones.CategoryPhysical,
		milestones.CategoryCognitive,
		milestones.CategoryLanguage,
		milestones.CategorySocial,
		milestones.CategoryEmotional,
	} {
		group := milestones.ByCategory(ms, c)
		if len(group) == 0 {
			continue
		}
		fmt.Println(milestones.CategoryName(c) + ":")
		for _, m := range group {
			mark := " "
			if achieved[m.ID] {
				mark = "x"
			}
			fmt.Printf("  [%s] %s  %s (around %d months)\n", mark, m.ID, m.Title, m.TypicalAgeMonths)
		}
	}
	if milestonesChild != "" {
		p := milestones.ComputeProgress(ms, achieved)
		fmt.Printf("Progress: %d of %d (%d%%)\n", p.Achieved, p.Total, p.Percent())
	}
	return nil
}

func runMilestonesAchieve(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	child, err := app.Children.Get(cmd.Context(), milestonesChild)
	if err != nil {
		return fmt.Errorf("child %s: %w", milestonesChild, err)
	}
	changed, err := milestones.MarkAchieved(child, args[0])
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("%s already has %s marked as reached.\n", child.Name, args[0])
		return nil
	}
	if err := app.Children.Update(cmd.Context(), child); err != nil {
		return err
	}
	fmt.Printf("Marked %s as reached for %s.\n", args[0], child.Name)
	return nil
}
