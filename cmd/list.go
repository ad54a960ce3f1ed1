package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dexarr/filter"
	"github.com/s0up4200/dexarr/pokeapi"
)

var (
	listLimit  uint32
	listOffset uint32
	listWhere  string
	listPreset string
	listJSON   bool
)

// listCmd groups the paginated list commands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources page by page, optionally filtered",
	Long: `List one page of a resource collection. --where takes an expression
evaluated against each entry of the page, for example:

  dexarr list pokemon --limit 100 --where 'ID <= 151 and nameContains("saur")'
  dexarr list pokemon --where 'isAlternateForm()' --offset 1000

Available names: Name, URL, ID, Entry, isAlternateForm(), hasWord(w),
nameContains(s), nameStartsWith(s), nameEndsWith(s), between(v, lo, hi).`,
}

var listPokemonCmd = &cobra.Command{
	Use:   "pokemon",
	Short: "List Pokemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "pokemon", client.PokemonList)
	},
}

var listGenerationCmd = &cobra.Command{
	Use:   "generation",
	Short: "List Generations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "generation", client.GenerationList)
	},
}

func init() {
	for _, c := range []*cobra.Command{listPokemonCmd, listGenerationCmd} {
		c.Flags().Uint32Var(&listLimit, "limit", pokeapi.DefaultLimit.Value(), fmt.Sprintf("page size, 1 to %d", pokeapi.MaxLimit))
		c.Flags().Uint32Var(&listOffset, "offset", 0, "offset into the collection")
		c.Flags().StringVarP(&listWhere, "where", "w", "", "filter expression")
		c.Flags().StringVarP(&listPreset, "preset", "p", "", "use a preset filter from config")
		c.Flags().BoolVar(&listJSON, "json", false, "print the page as JSON")
		listCmd.AddCommand(c)
	}
}

type listFunc func(ctx context.Context, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error)

func runList(cmd *cobra.Command, resource string, list listFunc) error {
	limit, err := pokeapi.NewLimit(listLimit)
	if err != nil {
		return err
	}
	page := pokeapi.NewPageRequest(limit, pokeapi.NewOffset(listOffset))

	// Compile before fetching so a bad expression costs no request
	f, err := filterManager.Resolve(listWhere, listPreset)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Info().
		Str("resource", resource).
		Uint32("limit", limit.Value()).
		Uint32("offset", listOffset).
		Msg("Listing")

	result, err := list(cmd.Context(), page)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", resource, err)
	}

	entries, err := filterManager.Apply(cmd.Context(), f, result.Results)
	if err != nil {
		return err
	}
	if f != nil {
		logger.Debug().
			Str("filter", f.Expression()).
			Int("matched", len(entries)).
			Int("page", len(result.Results)).
			Msg("Filter applied")
	}

	if listJSON {
		return printJSON(cmd.OutOrStdout(), listOutput{
			Count:    result.Count,
			Next:     result.Next,
			Previous: result.Previous,
			Results:  entries,
		})
	}
	printEntries(cmd.OutOrStdout(), resource, result, entries)
	return nil
}

// listOutput is the --json shape: the page with filtered results
type listOutput struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []filter.Entry `json:"results"`
}

func printEntries(w io.Writer, resource string, page *pokeapi.Page[pokeapi.NamedAPIResource], entries []filter.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No %s found on this page.\n", resource)
		return
	}

	fmt.Fprintf(w, "%d of %d %s on this page (%d total):\n", len(entries), len(page.Results), resource, page.Count)
	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintf(w, "%-6s %s\n", "ID", "NAME")
	fmt.Fprintln(w, strings.Repeat("━", 60))

	for _, entry := range entries {
		fmt.Fprintf(w, "%-6d %s\n", entry.ID, entry.Name)
	}

	if page.HasNext() {
		fmt.Fprintf(w, "\nMore results available (use --offset %d).\n", listOffset+uint32(len(page.Results)))
	}
}
