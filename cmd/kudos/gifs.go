package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func gifsCmd(s *session) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "gifs",
		Short: "Find GIFs for boards and cards",
	}
	cmd.PersistentFlags().IntVar(&limit, "limit", 0, "max results (default from config)")

	pick := func() int {
		if limit > 0 {
			return limit
		}
		return s.limit
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "trending",
			Short: "Trending GIFs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				printGifs(s.out, s.gifs.Trending(cmd.Context(), pick()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search GIFs",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				printGifs(s.out, s.gifs.Search(cmd.Context(), strings.Join(args, " "), pick()))
				return nil
			},
		},
	)
	return cmd
}
