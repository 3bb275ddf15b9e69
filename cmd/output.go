package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// printOutput writes v as json, or as yaml when --yaml is given
func printOutput(cmd *cobra.Command, v any) error {
	jsn, _ := cmd.Flags().GetBool(flagJSON)
	yml, _ := cmd.Flags().GetBool(flagYAML)
	var (
		out []byte
		err error
	)
	switch {
	case yml && jsn:
		return fmt.Errorf("can't pass both --json and --yaml, must pick one")
	case yml:
		out, err = yaml.Marshal(v)
	default: // default format is json
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
