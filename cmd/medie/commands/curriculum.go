package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/external/utcn"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/ui"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/httputil"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/logger"
)

// curriculumCmd represents the curriculum command
var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Inspect published curriculum plans",
	Long: `Inspect the curriculum plans published on the faculty site without
starting an interactive session.

Example:
  medie curriculum show --year 2 --spec CTI
  medie curriculum plans`,
}

// curriculumShowCmd represents the curriculum show command
var curriculumShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the courses of a curriculum plan",
	Long: `Downloads the curriculum plan for the given study year and
specialization and lists the courses it contains.

Example:
  medie curriculum show --year 2 --spec CTI
  medie curriculum show --year 1 --spec AU_EN`,
	RunE: runCurriculumShow,
}

// curriculumPlansCmd represents the curriculum plans command
var curriculumPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List curriculum plans published on the faculty site",
	Long: `Scans the faculty site for published curriculum plan PDFs and lists
their titles and download URLs.

Example:
  medie curriculum plans`,
	RunE: runCurriculumPlans,
}

var (
	// Curriculum flags
	curriculumYear int
	curriculumSpec string
)

func init() {
	rootCmd.AddCommand(curriculumCmd)
	curriculumCmd.AddCommand(curriculumShowCmd)
	curriculumCmd.AddCommand(curriculumPlansCmd)

	// Flags
	curriculumShowCmd.Flags().IntVar(&curriculumYear, "year", 1, "study year (1-4)")
	curriculumShowCmd.Flags().StringVar(&curriculumSpec, "spec", "CTI", "specialization code (CTI|CTI_EN|AU|AU_EN)")
}

func runCurriculumShow(cmd *cobra.Command, args []string) error {
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

	spec, err := utcn.SpecializationByCode(curriculumSpec)
	if err != nil {
		return err
	}
	if err := utcn.ValidateStudyYear(curriculumYear); err != nil {
		return err
	}

	console.Println(fmt.Sprintf("Fetching %s", client.PlanURL(curriculumYear, spec)))
	console.Println("")

	courses, err := client.FetchCurriculum(cmd.Context(), curriculumYear, spec)
	if err != nil {
		return fmt.Errorf("fetch curriculum: %w", err)
	}

	if len(courses) == 0 {
		console.Error("No courses were found in the curriculum PDF.")
		return fmt.Errorf("no courses found in curriculum plan")
	}

	console.CourseTable(courses)
	console.Println("")
	console.Println(fmt.Sprintf("%d courses, %s credits total", len(courses), grades.FormatCredits(totalCredits(courses))))

	return nil
}

func runCurriculumPlans(cmd *cobra.Command, args []string) error {
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

	plans, err := client.DiscoverPlans(cmd.Context())
	if err != nil {
		return fmt.Errorf("discover plans: %w", err)
	}

	if len(plans) == 0 {
		console.Println("No curriculum plans found on the faculty site.")
		return nil
	}

	console.Successf("Found %d curriculum plan(s)", len(plans))
	console.Println("")
	console.PlanList(plans)

	return nil
}

func totalCredits(courses []grades.Course) float64 {
	var total float64
	for _, course := range courses {
		total += course.Credits
	}
	return total
}
