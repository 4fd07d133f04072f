// Package cli команды операторской утилиты поверх того же сервиса датасетов,
// что и HTTP API.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

// Service операции над индексом, доступные из командной строки.
type Service interface {
	GameIDs(ctx context.Context) ([]string, error)
	MonthlyUsage(ctx context.Context, gameID string) (*datasets.Usage, error)
	FileInfo(ctx context.Context, params models.RequestParams) (*datasets.FileInfo, error)
}

// Loader создаёт Service по пути к конфигу. Пустой путь означает CONFIG_PATH.
type Loader func(configPath string) (Service, error)

type options struct {
	configPath string
	output     string
	load       Loader
}

// NewRootCommand собирает дерево команд.
func NewRootCommand(load Loader) *cobra.Command {
	opts := &options{load: load}

	root := &cobra.Command{
		Use:           "file-api-cli",
		Short:         "Inspect the OpenGameData dataset index",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("unsupported output format %q, use json or yaml", opts.output)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default $CONFIG_PATH)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	root.AddCommand(
		newGamesCommand(opts),
		newUsageCommand(opts),
		newMatchCommand(opts),
	)
	return root
}
