package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kudosboard/kudos-board/internal/domain"
)

func commentsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <boardID> <cardID>",
		Short: "Show the comments of a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			thread, err := s.loadThread(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printCard(s.out, thread.Card())
			printComments(s.out, thread.Comments())
			return nil
		},
	}
}

func commentCmd(s *session) *cobra.Command {
	req := &domain.CommentRequest{}
	cmd := &cobra.Command{
		Use:   "comment <boardID> <cardID>",
		Short: "Comment on a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			thread, err := s.loadThread(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			c, err := s.router.CreateComment(cmd.Context(), thread, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Added comment %s\n", c.ID)
			printComments(s.out, thread.Comments())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Message, "message", "", "comment text")
	cmd.Flags().StringVar(&req.Author, "author", "", "author name")
	return cmd
}

func deleteCommentCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-comment <boardID> <cardID> <commentID>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			thread, err := s.loadThread(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := s.router.DeleteComment(cmd.Context(), thread, args[2]); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Deleted comment %s\n", args[2])
			printComments(s.out, thread.Comments())
			return nil
		},
	}
}
