package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
	"github.com/mrsinham/alzforge/internal/intake"
)

const aboutText = `This tool collects the clinical and lifestyle details used to assess
Alzheimer's disease risk. The answers are gathered over seven sections and
assembled into one flat feature record with a column per field.

Categorical answers are stored as integer codes (No = 0, Yes = 1). The
patient's name and identifier are shown for reference only and are never
part of the record.`

// About returns the about command.
func About() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Describe the application",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, components.AppTitle)
			fmt.Fprintln(out)
			fmt.Fprintln(out, aboutText)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Sections:")
			for _, s := range intake.Sections() {
				fmt.Fprintf(out, "  %d. %s (%d fields)\n", int(s)+1, s, len(intake.SectionFields(s)))
			}
		},
	}
}
