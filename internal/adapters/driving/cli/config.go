package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talenta-labs/kampuskb/internal/adapters/driven/config/file"
	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage retrieval configuration",
	Long: `View and change the persisted retrieval configuration: the default
faculty and the scoring weight overrides.

Settings are stored in ~/.kampuskb/config.toml and picked up the next
time a command runs.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configFacultyCmd = &cobra.Command{
	Use:   "faculty <tag>",
	Short: "Set the default faculty",
	Long: `Set the faculty used when a query does not name one.

Valid tags:
  fsktm - Fakulti Sains Komputer dan Teknologi Maklumat
  fkaab - Fakulti Kejuruteraan Awam dan Alam Bina
  fkee  - Fakulti Kejuruteraan Elektrik dan Elektronik`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigFaculty,
}

var configWeightCmd = &cobra.Command{
	Use:   "weight <name> <value>",
	Short: "Override a scoring weight",
	Long: `Override a single scoring weight. Out-of-range values degrade to
the engine default at read time.

Weight names:
  keyword_match, fuzzy_factor, content_match, staff_name_match,
  staff_department_match, staff_title_match, fuzzy_threshold,
  min_token_length, max_context_bytes`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigWeight,
}

// configStore is shared by the config subcommands. Tests replace it
// with a store backed by a temporary directory.
var configStore driven.ConfigStore

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configFacultyCmd)
	configCmd.AddCommand(configWeightCmd)
	rootCmd.AddCommand(configCmd)
}

func ensureConfigStore() error {
	if configStore != nil {
		return nil
	}
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[General]")
	if tag := configStore.DefaultFaculty(); tag != "" {
		cmd.Printf("  Default faculty: %s\n", tag)
	} else {
		cmd.Printf("  Default faculty: (not set, using %s)\n", domain.FacultyFSKTM)
	}
	cmd.Println()

	w := configStore.Weights()
	cmd.Println("[Weights]")
	cmd.Printf("  keyword_match:          %.2f\n", w.KeywordMatch)
	cmd.Printf("  fuzzy_factor:           %.2f\n", w.FuzzyFactor)
	cmd.Printf("  content_match:          %.2f\n", w.ContentMatch)
	cmd.Printf("  staff_name_match:       %.2f\n", w.StaffNameMatch)
	cmd.Printf("  staff_department_match: %.2f\n", w.StaffDepartmentMatch)
	cmd.Printf("  staff_title_match:      %.2f\n", w.StaffTitleMatch)
	cmd.Printf("  fuzzy_threshold:        %.2f\n", w.FuzzyThreshold)
	cmd.Printf("  min_token_length:       %d\n", w.MinTokenLength)
	if w.MaxContextBytes > 0 {
		cmd.Printf("  max_context_bytes:      %d\n", w.MaxContextBytes)
	} else {
		cmd.Printf("  max_context_bytes:      (unlimited)\n")
	}

	return nil
}

func runConfigFaculty(cmd *cobra.Command, args []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	tag := domain.FacultyTag(strings.ToLower(strings.TrimSpace(args[0])))
	if !tag.IsConcrete() {
		return fmt.Errorf("%w: %q is not a faculty tag (use fsktm, fkaab or fkee)",
			domain.ErrInvalidInput, args[0])
	}

	if err := configStore.SetDefaultFaculty(string(tag)); err != nil {
		return fmt.Errorf("saving default faculty: %w", err)
	}

	cmd.Printf("Default faculty set to: %s\n", tag.Description())
	return nil
}

func runConfigWeight(cmd *cobra.Command, args []string) error {
	if err := ensureConfigStore(); err != nil {
		return err
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[1])
	}

	w := configStore.Weights()
	if err := applyWeight(&w, name, value); err != nil {
		return err
	}

	if err := configStore.SetWeights(w); err != nil {
		return fmt.Errorf("saving weights: %w", err)
	}

	cmd.Printf("Weight %s set to: %s\n", name, args[1])
	return nil
}

func applyWeight(w *domain.ScoringWeights, name string, value float64) error {
	switch name {
	case "keyword_match":
		w.KeywordMatch = value
	case "fuzzy_factor":
		w.FuzzyFactor = value
	case "content_match":
		w.ContentMatch = value
	case "staff_name_match":
		w.StaffNameMatch = value
	case "staff_department_match":
		w.StaffDepartmentMatch = value
	case "staff_title_match":
		w.StaffTitleMatch = value
	case "fuzzy_threshold":
		w.FuzzyThreshold = value
	case "min_token_length":
		w.MinTokenLength = int(value)
	case "max_context_bytes":
		w.MaxContextBytes = int(value)
	default:
		return fmt.Errorf("%w: unknown weight %q", domain.ErrInvalidInput, name)
	}
	return nil
}
