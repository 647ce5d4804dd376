package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/service"
)

// dictctl — консольный доступ к справочнику кодов: просмотр, разбор кода, экспорт.
// Работает с тем же статическим реестром, что и HTTP сервис.

var registry = codes.DefaultRegistry()
var dictionary = service.NewDictionaryService(registry, codes.StatusClassPrefix)

var rootCmd = &cobra.Command{
	Use:   "dictctl",
	Short: "Справочник кодов контрактной системы",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "Показать категории справочника и их записи",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			c, err := dictionary.GetCategory(args[0])
			if err != nil {
				return fmt.Errorf("категория %s не найдена", args[0])
			}
			printCategory(c)
			return nil
		}

		for _, c := range dictionary.ListCategories() {
			printCategory(c)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <category> <code>",
	Short: "Разобрать код: ключ, подпись и CSS-класс",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dictionary.Resolve(args[0], args[1])
		if err != nil {
			return fmt.Errorf("категория %s не найдена", args[0])
		}

		if !res.Found {
			// Промах — не ошибка и для CLI: печатаем пустой результат
			fmt.Printf("код %s не найден в категории %s\n", args[1], args[0])
			return nil
		}

		fmt.Printf("key:   %s\nlabel: %s\nclass: %s\n", res.Key, res.Label, res.Class)
		return nil
	},
}

func printCategory(c codes.Category) {
	fmt.Printf("%s:\n", c.Name())
	for _, e := range c.Entries() {
		fmt.Printf("  %-14s %-6s %s\n", e.Key, e.Code, e.Label)
	}
}

func main() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
