package main

import (
	"github.com/ribgsilva/mindful-notes/app/cmd/schema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [create|delete|help]",
	Short:     "Create or delete the notes schema",
	ValidArgs: []string{"create", "delete", "help"},
	Args:      cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return schema.Run(args)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
