package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mrsinham/alzforge/internal/entry"
	"github.com/mrsinham/alzforge/internal/intake"
)

// Fields returns the command that lists the field catalog.
func Fields() *cobra.Command {
	var sectionArg string

	cmd := &cobra.Command{
		Use:   "fields [NAME...]",
		Short: "List the fields collected by each section",
		Long: `List the record fields with their kind, allowed range, default and
categorical codes. Pass field names to show only those fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := selectFields(sectionArg, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields(specs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sectionArg, "section", "s", "", "Only list one section (number 1-7 or title)")

	return cmd
}

// parseSection accepts a 1-based section number or a case-insensitive title prefix.
func parseSection(arg string) (intake.Section, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		s := intake.Section(n - 1)
		if !s.Valid() {
			return 0, fmt.Errorf("section %d out of range 1-%d", n, intake.TotalSteps)
		}
		return s, nil
	}

	want := strings.ToLower(arg)
	for _, s := range intake.Sections() {
		if want != "" && strings.HasPrefix(strings.ToLower(s.String()), want) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", arg)
}

func selectFields(sectionArg string, names []string) ([]intake.FieldSpec, error) {
	if len(names) > 0 {
		specs := make([]intake.FieldSpec, 0, len(names))
		for _, n := range names {
			spec, err := intake.LookupField(n)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
		return specs, nil
	}

	if sectionArg == "" {
		return intake.AllFields(), nil
	}
	s, err := parseSection(sectionArg)
	if err != nil {
		return nil, err
	}
	return intake.SectionFields(s), nil
}

func renderFields(specs []intake.FieldSpec) string {
	rows := make([][]string, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, []string{
			spec.Name,
			spec.Section.String(),
			spec.Kind.String(),
			entry.Describe(spec),
			entry.FormatNumber(spec, spec.Default),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Field", "Section", "Kind", "Values", "Default").
		Rows(rows...).
		Render()
}
