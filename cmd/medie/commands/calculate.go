package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/external/utcn"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/ui"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/httputil"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/logger"
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate your weighted semester average",
	Long: `Downloads the curriculum plan for your study year and specialization,
lets you pick the subjects you are taking this semester, collects your
grades and calculates the weighted average.

Study year and specialization can be passed as flags or entered
interactively. Without --policy the averaging method is chosen
interactively as well.

Example:
  medie calculate
  medie calculate --year 3 --spec CTI
  medie calculate --year 2 --spec AU_EN --policy arithmetic`,
	RunE: runCalculate,
}

var (
	// Calculate flags
	calcYear   int
	calcSpec   string
	calcPolicy string
)

func init() {
	rootCmd.AddCommand(calculateCmd)

	// Flags
	calculateCmd.Flags().IntVar(&calcYear, "year", 0, "study year (1-4)")
	calculateCmd.Flags().StringVar(&calcSpec, "spec", "", "specialization code (CTI|CTI_EN|AU|AU_EN)")
	calculateCmd.Flags().StringVar(&calcPolicy, "policy", "", "averaging policy (arithmetic|harmonic)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Create faculty site client
	httpClient := httputil.New(cfg, log)
	client := utcn.NewClient(httpClient, log, cfg.Curriculum)

	console := ui.NewConsole(os.Stdout)

	err = runCalculateFlow(cmd.Context(), console, client)
	if ui.IsInterrupt(err) {
		console.Println("")
		console.Println("Operation cancelled by user. Exiting...")
		return nil
	}

	return err
}

// runCalculateFlow drives the interactive session from the welcome screen
// to the final results.
func runCalculateFlow(ctx context.Context, console *ui.Console, client *utcn.Client) error {
	console.Welcome()

	// Step 1: academic information
	console.Step(1, "Enter your academic information")
	console.Println("")

	year, spec, err := resolveAcademicInfo(console)
	if err != nil {
		return err
	}

	// Step 2: fetch the curriculum plan
	console.Println("")
	console.Step(2, fmt.Sprintf("Fetching curriculum for Year %d, %s...", year, spec.Code))
	console.Println("This may take a few moments...")
	console.Println("")

	courses, err := client.FetchCurriculum(ctx, year, spec)
	if err != nil {
		console.Error("Could not download the curriculum plan.")
		console.Println("Please check your internet connection, or try again later.")
		return fmt.Errorf("fetch curriculum: %w", err)
	}

	if len(courses) == 0 {
		console.Error("No courses were found in the curriculum PDF.")
		console.Println("Please check your year and specialization, or try again later.")
		return fmt.Errorf("no courses found in curriculum plan")
	}

	// Clear the download output before moving on to selection
	console.Welcome()
	console.Successf("Successfully loaded %d courses from curriculum", len(courses))
	console.Println("")

	// Step 3: subject selection
	console.Step(3, "Select the subjects you are taking this semester")
	console.SectionHeader("SELECT SUBJECTS YOU ARE TAKING THIS SEMESTER")
	console.Println("Use arrow keys to navigate, SPACE to select/deselect, ENTER to confirm")
	console.Println("")

	indices, err := console.SelectCourses(courses)
	if err != nil {
		return err
	}

	selected := grades.SelectByIndices(courses, indices)
	if len(selected) == 0 {
		console.Println("")
		console.Println("No subjects selected. Exiting...")
		return nil
	}

	console.Println("")
	console.Successf("Selected %d subject(s)", len(selected))
	console.Println("")

	// Step 4: grade entry
	console.Step(4, fmt.Sprintf("Enter grades for your %d selected subject(s)", len(selected)))
	console.SectionHeader("ENTER GRADES FOR SELECTED SUBJECTS")
	console.Println("Enter grades from 0 to 10 (grades below 5 are failing)")
	console.Println("")

	graded, err := console.CollectGrades(selected)
	if err != nil {
		return err
	}

	// Step 5: averaging policy and calculation
	console.Println("")
	policy, err := resolvePolicy(console)
	if err != nil {
		return err
	}

	console.Println("")
	console.Step(5, fmt.Sprintf("Calculating your %s grade...", policy.Label()))

	result := grades.Aggregate(graded, policy)

	// Step 6: results
	console.ShowResults(result, policy)

	return nil
}

// resolveAcademicInfo returns the study year and specialization, taking
// them from flags when given and prompting otherwise.
func resolveAcademicInfo(console *ui.Console) (int, utcn.Specialization, error) {
	year := calcYear
	if year == 0 {
		var err error
		year, err = console.PromptStudyYear()
		if err != nil {
			return 0, utcn.Specialization{}, err
		}
	} else if err := utcn.ValidateStudyYear(year); err != nil {
		return 0, utcn.Specialization{}, err
	}

	if calcSpec != "" {
		spec, err := utcn.SpecializationByCode(calcSpec)
		return year, spec, err
	}

	spec, err := console.PromptSpecialization()
	return year, spec, err
}

// resolvePolicy returns the averaging policy from the --policy flag, or
// asks for one when the flag is not set.
func resolvePolicy(console *ui.Console) (grades.Policy, error) {
	if calcPolicy != "" {
		return grades.ParsePolicy(calcPolicy)
	}
	return console.PromptPolicy()
}
