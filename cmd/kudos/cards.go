package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kudosboard/kudos-board/internal/domain"
)

func createCardCmd(s *session) *cobra.Command {
	req := &domain.CardRequest{}
	cmd := &cobra.Command{
		Use:   "create-card <boardID>",
		Short: "Add a card to a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := s.loadDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := s.router.CreateCard(cmd.Context(), detail, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Created card %s\n", c.ID)
			printCards(s.out, detail.Cards())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "card title")
	cmd.Flags().StringVar(&req.Message, "message", "", "card message")
	cmd.Flags().StringVar(&req.Image, "image", "", "GIF URL")
	cmd.Flags().StringVar(&req.Author, "author", "", "author name")
	return cmd
}

func deleteCardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-card <boardID> <cardID>",
		Short: "Delete a card with its comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := s.loadDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := s.router.DeleteCard(cmd.Context(), detail, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Deleted card %s\n", args[1])
			printCards(s.out, detail.Cards())
			return nil
		},
	}
}

func upvoteCardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "upvote-card <boardID> <cardID>",
		Short: "Upvote a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := s.loadDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := s.router.UpvoteCard(cmd.Context(), detail, args[1])
			if err != nil {
				return err
			}
			printCard(s.out, c)
			return nil
		},
	}
}

func likeCardCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "like-card <boardID> <cardID>",
		Short: "Like a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := s.loadDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := s.router.LikeCard(cmd.Context(), detail, args[1])
			if err != nil {
				return err
			}
			printCard(s.out, c)
			return nil
		},
	}
}
