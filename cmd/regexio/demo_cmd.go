package main

import (
	"fmt"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [input...]",
	Short: "Build the showcase pattern and match it against inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		pattern, err := samplePattern().Build()
		if err != nil {
			return err
		}
		fmt.Println(pattern)

		// Full-string semantics: anchor both ends.
		re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
		if err != nil {
			return fmt.Errorf("compile pattern: %w", err)
		}

		inputs := args
		if len(inputs) == 0 {
			inputs = []string{"%c G", "%c 23"}
		}
		for _, input := range inputs {
			if re.MatchString(input) {
				fmt.Printf("%q %s\n", input, color.GreenString("matches"))
			} else {
				fmt.Printf("%q %s\n", input, color.RedString("does not match"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
