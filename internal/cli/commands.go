package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
)

func newGamesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List games present in the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.load(opts.configPath)
			if err != nil {
				return err
			}
			ids, err := svc.GameIDs(cmd.Context())
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, map[string]any{"game_ids": ids})
		},
	}
}

func newUsageCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "usage <game_id>",
		Short: "Print the gap-filled monthly session series of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := gameArg(args[0])
			if err != nil {
				return err
			}
			svc, err := opts.load(opts.configPath)
			if err != nil {
				return err
			}
			usage, err := svc.MonthlyUsage(cmd.Context(), gameID)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, map[string]any{
				"game_id":  usage.GameID,
				"datasets": usage.Months,
			})
		},
	}
}

func newMatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match <game_id> <year> <month>",
		Short: "Show the dataset covering a month",
		Long: `Find the dataset whose range contains the given month and print its
files, templates and links. Out of range year or month values fall back
to the last completed month, the same way the HTTP API does.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := params.New(time.Now).Sanitize(args[0], args[1], args[2])
			if !p.HasGame() {
				return badGameID(args[0])
			}
			svc, err := opts.load(opts.configPath)
			if err != nil {
				return err
			}
			info, err := svc.FileInfo(cmd.Context(), p)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, info)
		},
	}
}

func gameArg(raw string) (string, error) {
	id := params.New(nil).SanitizeGameID(raw)
	if id == "" {
		return "", badGameID(raw)
	}
	return id, nil
}
