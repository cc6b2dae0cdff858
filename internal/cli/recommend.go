package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"uniadvisor_backend/internal/algorithms"
	"uniadvisor_backend/internal/app"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const promptAnyCountry = "All"

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank universities for a single profile against the configured catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		cat, err := app.NewCatalog(ctx, cfg)
		if err != nil {
			return err
		}
		defer cat.Close()

		var snap *catalog.Snapshot
		if cat.Store != nil {
			snap, err = cat.Store.Reload(ctx)
		} else {
			snap, err = cat.Provider.Snapshot(ctx)
		}
		if err != nil {
			return err
		}

		var req dto.ProfileRequest
		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			req, err = promptProfile(snap)
		} else {
			req, err = profileFromFlags(cmd)
		}
		if err != nil {
			return err
		}

		rec := services.NewRecommendationService().Recommend(snap, &req)

		asJSON, _ := cmd.Flags().GetBool("output-json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"status":          dto.StatusSuccess,
				"total":           rec.Total,
				"recommendations": rec.Results,
				"fallback":        rec.Fallback,
			})
		}
		return printRecommendation(rec)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	addProfileFlags(recommendCmd)
	recommendCmd.Flags().BoolP("interactive", "i", false, "ask for the profile interactively")
	recommendCmd.Flags().Bool("output-json", false, "print the result as JSON")
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("gpa", 0, "GPA on a 4.0 scale")
	cmd.Flags().Float64("test-score", 0, "IELTS-scale test score")
	cmd.Flags().Float64("budget", 0, "annual budget")
	cmd.Flags().String("country", "", "preferred country")
	cmd.Flags().String("field", "", "preferred field of study")
}

// profileFromFlags: незаданный флаг означает "не указано", а не ноль
func profileFromFlags(cmd *cobra.Command) (dto.ProfileRequest, error) {
	var req dto.ProfileRequest
	flags := cmd.Flags()

	for name, dst := range map[string]**float64{
		"gpa":        &req.GPA,
		"test-score": &req.TestScore,
		"budget":     &req.Budget,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return req, err
		}
		if v < 0 {
			return req, fmt.Errorf("--%s must not be negative", name)
		}
		*dst = &v
	}
	req.Country, _ = flags.GetString("country")
	req.Field, _ = flags.GetString("field")
	return req, nil
}

func validateOptionalNumber(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return errors.New("enter a number or leave empty")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func promptNumber(label string) (*float64, error) {
	prompt := promptui.Prompt{
		Label:    label + " (empty to skip)",
		Validate: validateOptionalNumber,
	}
	raw, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// catalogCountries - страны каталога для выбора в подсказке
func catalogCountries(snap *catalog.Snapshot) []string {
	seen := map[string]struct{}{}
	countries := []string{}
	for _, u := range snap.Universities {
		if _, ok := seen[u.Country]; ok {
			continue
		}
		seen[u.Country] = struct{}{}
		countries = append(countries, u.Country)
	}
	sort.Strings(countries)
	return append([]string{promptAnyCountry}, countries...)
}

func promptProfile(snap *catalog.Snapshot) (dto.ProfileRequest, error) {
	var req dto.ProfileRequest
	var err error

	if req.GPA, err = promptNumber("GPA (0-4)"); err != nil {
		return req, err
	}
	if req.TestScore, err = promptNumber("IELTS score (0-9)"); err != nil {
		return req, err
	}
	if req.Budget, err = promptNumber("Annual budget, EUR"); err != nil {
		return req, err
	}

	countrySelect := promptui.Select{
		Label: "Country",
		Items: catalogCountries(snap),
	}
	_, country, err := countrySelect.Run()
	if err != nil {
		return req, err
	}
	if country != promptAnyCountry {
		req.Country = country
	}

	fieldPrompt := promptui.Prompt{Label: "Field of study (empty for any)"}
	if req.Field, err = fieldPrompt.Run(); err != nil {
		return req, err
	}
	return req, nil
}

func printRecommendation(rec algorithms.Recommendation) error {
	if len(rec.Results) == 0 {
		fmt.Println("Catalog is empty")
		return nil
	}
	if rec.Fallback {
		fmt.Println("No university matches the profile; showing the most affordable options.")
	} else {
		fmt.Printf("%d universities match the profile, top %d:\n", rec.Total, len(rec.Results))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUNIVERSITY\tCOUNTRY\tCITY\tFEE\tSCORE")
	for i, r := range rec.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.0f\t%.2f\n", i+1, r.Name, r.Country, r.City, r.AnnualFee, r.MatchScore)
	}
	return tw.Flush()
}
