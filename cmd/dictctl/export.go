package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
)

var exportFormat string

// exportCategory — форма категории в экспортируемом файле.
type exportCategory struct {
	Name    string        `json:"name" yaml:"name"`
	Entries []codes.Entry `json:"entries" yaml:"entries"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Выгрузить справочник в json или yaml",
	Long:  "Выгружает весь справочник в stdout. Фронтенд может положить результат рядом со сборкой вместо ручного конфига кодов.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := make([]exportCategory, 0, registry.Len())
		for _, c := range registry.Categories() {
			out = append(out, exportCategory{
				Name:    c.Name(),
				Entries: c.Entries(),
			})
		}

		switch exportFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(out)
		default:
			return fmt.Errorf("неизвестный формат %q, поддерживаются json и yaml", exportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "формат выгрузки: json или yaml")
}
