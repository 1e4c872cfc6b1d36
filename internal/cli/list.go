package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/browse"
	"github.com/five82/roster/internal/catalog"
)

var (
	listPage int
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print one page of characters",
	Long: `Fetches one page of characters, optionally filtered by a search
query. Pages past the end fall back to the last page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape of one page.
type listOutput struct {
	Query      string              `json:"query"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
	Results    []catalog.Character `json:"results"`
}

func runList(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	if listPage < 1 {
		return fmt.Errorf("page must be at least 1, got %d", listPage)
	}

	env, err := app.Open(appOptions())
	if err != nil {
		return err
	}
	defer env.Close()

	session := env.NewSession(cmd.Context())
	defer session.Close()

	if err := loadPage(session, query, listPage); err != nil {
		return err
	}

	st := session.State
	out := listOutput{
		Query:      st.Query,
		Page:       st.CurrentPage,
		TotalPages: st.TotalPages,
		Total:      st.Total,
		Results:    st.Characters,
	}
	if listJSON {
		return printJSON(cmd, out)
	}
	return outputListTable(cmd, out)
}

// loadPage runs a list fetch to completion, following the past-end refetch.
func loadPage(session *browse.Session, query string, page int) error {
	work := session.Load(query, page)
	for work != nil {
		work = session.ApplyList(work())
	}
	if err := session.State.LoadErr; err != nil {
		return fmt.Errorf("list characters: %w", err)
	}
	return nil
}

func outputListTable(cmd *cobra.Command, out listOutput) error {
	w := cmd.OutOrStdout()
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No characters found.")
		return nil
	}

	header := fmt.Sprintf("Page %d/%d (%d characters)", out.Page, out.TotalPages, out.Total)
	if out.Query != "" {
		header += fmt.Sprintf(" matching %q", out.Query)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)
	for i, c := range out.Results {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, c.Name)
		fmt.Fprintf(w, "      born %s, %s\n", orNA(c.BirthYear), orNA(c.Gender))
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, string(data))
	return nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
