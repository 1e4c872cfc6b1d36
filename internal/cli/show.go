package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/catalog"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <query> <index>",
	Short: "Print the full details of one character",
	Long: `Searches for query and prints the character at index (1-based) on
the first page of results, with homeworld, species and film titles
resolved. Use "" to browse without a query.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the character as JSON")
	rootCmd.AddCommand(showCmd)
}

// detailOutput is the JSON shape of an enriched character.
type detailOutput struct {
	catalog.Character
	HomeworldName string   `json:"homeworld_name"`
	SpeciesName   string   `json:"species_name"`
	FilmTitles    []string `json:"film_titles"`
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 1 {
		return fmt.Errorf("index must be a positive number, got %q", args[1])
	}

	env, err := app.Open(appOptions())
	if err != nil {
		return err
	}
	defer env.Close()

	session := env.NewSession(cmd.Context())
	defer session.Close()

	if err := loadPage(session, args[0], 1); err != nil {
		return err
	}
	if n := len(session.State.Characters); index > n {
		return fmt.Errorf("index %d out of range: %d characters on the first page", index, n)
	}

	work := session.OnItemClick(index - 1)
	session.ApplyDetail(work())
	if err := session.State.DetailErr; err != nil {
		return fmt.Errorf("load details: %w", err)
	}

	d := session.State.Selected
	out := detailOutput{
		Character:     d.Character,
		HomeworldName: d.HomeworldName,
		SpeciesName:   d.SpeciesName,
		FilmTitles:    d.FilmTitles,
	}
	if showJSON {
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()

	fmt.Fprintln(w, out.Name)
	fmt.Fprintf(w, "  Born:      %s\n", orNA(out.BirthYear))
	fmt.Fprintf(w, "  Gender:    %s\n", orNA(out.Gender))
	fmt.Fprintf(w, "  Homeworld: %s\n", orNA(out.HomeworldName))
	fmt.Fprintf(w, "  Species:   %s\n", out.SpeciesName)
	fmt.Fprintf(w, "  Films (%d):\n", len(out.FilmTitles))
	for i, title := range out.FilmTitles {
		fmt.Fprintf(w, "    %d. %s\n", i+1, title)
	}
	return nil
}
