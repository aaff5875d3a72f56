package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexio/regexio/internal/codegen"
)

var (
	generateOut string
	generatePkg string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a Go source file embedding the showcase patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		f := codegen.NewFile(generatePkg)
		for _, np := range showcasePatterns() {
			if err := f.Add(np.name, np.pattern); err != nil {
				return err
			}
		}
		if err := f.Save(generateOut); err != nil {
			return fmt.Errorf("write %s: %w", generateOut, err)
		}
		fmt.Printf("Wrote %s\n", generateOut)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "patterns_gen.go", "output file path")
	generateCmd.Flags().StringVarP(&generatePkg, "package", "p", "patterns", "package name for the generated file")
	rootCmd.AddCommand(generateCmd)
}
