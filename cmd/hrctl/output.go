package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func output(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
