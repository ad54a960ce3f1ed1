package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dexarr/pokeapi"
)

var (
	getID   uint32
	getName string
)

// getCmd groups the single-resource fetch commands
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single resource by id or name",
}

var getPokemonCmd = &cobra.Command{
	Use:     "pokemon",
	Short:   "Fetch a Pokemon by --id or --name",
	Example: "  dexarr get pokemon --name pikachu\n  dexarr get pokemon --id 25",
	Args:    cobra.NoArgs,
	RunE:    runGetPokemon,
}

var getGenerationCmd = &cobra.Command{
	Use:     "generation",
	Short:   "Fetch a Generation by --id or --name",
	Example: "  dexarr get generation --name generation-i",
	Args:    cobra.NoArgs,
	RunE:    runGetGeneration,
}

func init() {
	for _, c := range []*cobra.Command{getPokemonCmd, getGenerationCmd} {
		c.Flags().Uint32Var(&getID, "id", 0, "numeric id (exclusive with --name)")
		c.Flags().StringVar(&getName, "name", "", "resource name (exclusive with --id)")
		getCmd.AddCommand(c)
	}
}

// refArgs turns the flags into optional id/name; a flag counts as present
// only when it was given on the command line
func refArgs(cmd *cobra.Command) (*uint32, *string) {
	var id *uint32
	var name *string
	if cmd.Flags().Changed("id") {
		id = &getID
	}
	if cmd.Flags().Changed("name") {
		name = &getName
	}
	return id, name
}

func runGetPokemon(cmd *cobra.Command, args []string) error {
	id, name := refArgs(cmd)
	ref, err := pokeapi.ResolvePokemonRef("pokemon_get", id, name)
	if err != nil {
		return err
	}

	logger.Info().Str("ref", ref.String()).Msg("Fetching Pokemon")

	pokemon, err := client.Pokemon(cmd.Context(), ref)
	if err != nil {
		return fmt.Errorf("failed to fetch pokemon %s: %w", ref, err)
	}
	return printJSON(cmd.OutOrStdout(), pokemon)
}

func runGetGeneration(cmd *cobra.Command, args []string) error {
	id, name := refArgs(cmd)
	ref, err := pokeapi.ResolveGenerationRef("generation_get", id, name)
	if err != nil {
		return err
	}

	logger.Info().Str("ref", ref.String()).Msg("Fetching Generation")

	generation, err := client.Generation(cmd.Context(), ref)
	if err != nil {
		return fmt.Errorf("failed to fetch generation %s: %w", ref, err)
	}
	return printJSON(cmd.OutOrStdout(), generation)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
