package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"babysteps/internal/domain"
)

var (
	childName     string
	childBirthday string
	childGender   string
)

var childrenCmd = &cobra.Command{
	Use:   "children",
	Short: "Manage child profiles",
}

var childrenAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a child profile",
	RunE:  runChildrenAdd,
}

var childrenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List child profiles",
	RunE:  runChildrenList,
}

var childrenRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a child profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runChildrenRemove,
}

func init() {
	childrenAddCmd.Flags().StringVar(&childName, "name", "", "child's name")
	childrenAddCmd.Flags().StringVar(&childBirthday, "birthday", "", "birthday as YYYY-MM-DD (optional)")
	childrenAddCmd.Flags().StringVar(&childGender, "gender", "", "gender (optional)")
	_ = childrenAddCmd.MarkFlagRequired("name")
}

func runChildrenAdd(cmd *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	child := &domain.Child{Name: childName, Gender: childGender}
	if childBirthday != "" {
		birthday, err := time.Parse("2006-01-02", childBirthday)
		if err != nil {
			return fmt.Errorf("invalid birthday %q, expected YYYY-MM-DD", childBirthday)
		}
		child.Birthday = birthday
	}

	if err := app.Children.Create(cmd.Context(), child); err != nil {
		return err
	}
	fmt.Printf("Added %s (%s)\n", child.Name, child.ID)
	return nil
}

func runChildrenList(cmd *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	children, err := app.Children.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(children) == 0 {
		fmt.Println("No children added yet. Use 'babysteps children add --name <name>'.")
		return nil
	}
	for _, c := range children {
		age := "age unknown"
		if c.AgeKnown() {
			age = fmt.Sprintf("%d months", domain.AgeInMonths(c.Birthday, time.Now()))
		}
		fmt.Printf("%s  %s  %s\n", c.ID, c.Name, age)
	}
	return nil
}

func runChildrenRemove(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Children.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Removed", args[0])
	return nil
}
