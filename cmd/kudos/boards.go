package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/scope"
)

func boardsCmd(s *session) *cobra.Command {
	var filter, search string
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := s.loadList(cmd.Context())
			if err != nil {
				return err
			}
			shown := list.Displayed(filter, search)
			if len(shown) == 0 {
				fmt.Fprintln(s.out, list.EmptyMessage(search))
				return nil
			}
			printBoards(s.out, shown)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", scope.FilterAll, `"all", "recent" or a category`)
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive title search")
	return cmd
}

func boardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "board <boardID>",
		Short: "Show a board and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := s.loadDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBoard(s.out, detail.Board())
			printCards(s.out, detail.Cards())
			return nil
		},
	}
}

func createBoardCmd(s *session) *cobra.Command {
	req := &domain.BoardRequest{}
	var category string
	cmd := &cobra.Command{
		Use:   "create-board",
		Short: "Create a board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Category = domain.Category(category)
			list, err := s.loadList(cmd.Context())
			if err != nil {
				return err
			}
			b, err := s.router.CreateBoard(cmd.Context(), list, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Created board %s\n", b.ID)
			printBoards(s.out, list.Boards())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "board title")
	cmd.Flags().StringVar(&req.Description, "description", "", "board description")
	cmd.Flags().StringVar(&category, "category", "", "celebration, thank you, inspiration or feedback")
	cmd.Flags().StringVar(&req.Image, "image", "", "GIF URL")
	cmd.Flags().StringVar(&req.Author, "author", "", "author name")
	return cmd
}

func deleteBoardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-board <boardID>",
		Short: "Delete a board with its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.loadList(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.router.DeleteBoard(cmd.Context(), list, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Deleted board %s\n", args[0])
			printBoards(s.out, list.Boards())
			return nil
		},
	}
}

func likeBoardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "like-board <boardID>",
		Short: "Like a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.loadList(cmd.Context())
			if err != nil {
				return err
			}
			b, err := s.router.LikeBoard(cmd.Context(), list, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "%s now has %d likes\n", b.Title, b.Likes)
			return nil
		},
	}
}
