package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set durable runtime configuration values",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value, parsed as JSON when possible",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, rawValue := args[0], args[1]

		var parsed json.RawMessage
		if json.Valid([]byte(rawValue)) {
			parsed = json.RawMessage(rawValue)
		} else {
			// Fall back to treating the argument as a literal string
			// when it isn't valid JSON on its own.
			encoded, err := json.Marshal(rawValue)
			if err != nil {
				return err
			}
			parsed = encoded
		}

		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetConfig(ctx, key, parsed); err != nil {
			return err
		}
		fmt.Println("config set")
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value, pretty-printed as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		raw, ok, err := store.GetConfig(ctx, args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("null")
			return nil
		}

		var val any
		if err := json.Unmarshal(raw, &val); err != nil {
			return err
		}
		pretty, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}
