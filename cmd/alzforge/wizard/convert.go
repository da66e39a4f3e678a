package wizard

import (
	"fmt"
	"io"

	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/screens"
	"github.com/mrsinham/alzforge/internal/entry"
	"github.com/mrsinham/alzforge/internal/intake"
	"gopkg.in/yaml.v3"
)

// RecordRows turns rec into field, value and meaning rows in column order.
// Values use the field's input format; meaning is the option label of
// categorical fields.
func RecordRows(rec intake.FeatureRecord) [][]string {
	pairs := rec.Transpose()
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		spec, err := intake.LookupField(p.Name)
		if err != nil {
			rows = append(rows, []string{p.Name, intake.FormatValue(p.Value), ""})
			continue
		}

		meaning := ""
		if spec.Kind == intake.KindCategory {
			if label, ok := spec.OptionLabel(int(p.Value)); ok {
				meaning = label
			}
		}
		rows = append(rows, []string{spec.Name, entry.FormatNumber(spec, p.Value), meaning})
	}
	return rows
}

// WriteRecord prints rec to w as a table or YAML.
func WriteRecord(w io.Writer, rec intake.FeatureRecord, format string) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		return enc.Close()
	case OutputTable, "":
		_, err := fmt.Fprintln(w, screens.RenderTable(RecordRows(rec)))
		return err
	}
	return fmt.Errorf("%w: output %q", ErrInvalidSettings, format)
}
