package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/kudosboard/kudos-board/internal/scope"
)

func printMode(w io.Writer, label string, status scope.Status, notice string) {
	line := fmt.Sprintf("[%s] %s", label, strings.ToUpper(status.String()))
	if status == scope.Degraded && notice == "" {
		notice = "server unreachable, showing sample data"
	}
	if notice != "" {
		line += " - " + notice
	}
	fmt.Fprintln(w, line)
}

func originTag(o domain.Origin) string {
	switch o {
	case domain.OriginSynthetic:
		return "demo"
	case domain.OriginLocal:
		return "local"
	default:
		return ""
	}
}

func printBoards(w io.Writer, boards []domain.Board) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tLIKES\tAUTHOR\t")
	for _, b := range boards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", b.ID, b.Title, b.Category, b.Likes, b.Author, originTag(b.Origin))
	}
	_ = tw.Flush()
}

func printBoard(w io.Writer, b domain.Board) {
	fmt.Fprintf(w, "%s  (%s, %d likes)\n", b.Title, b.Category, b.Likes)
	if b.Description != "" {
		fmt.Fprintln(w, b.Description)
	}
	if b.Author != "" {
		fmt.Fprintf(w, "by %s\n", b.Author)
	}
}

func printCards(w io.Writer, cards []domain.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tVOTES\tLIKES\tAUTHOR\t")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n", c.ID, c.Title, c.Votes, c.Likes, c.Author, originTag(c.Origin))
	}
	_ = tw.Flush()
}

func printCard(w io.Writer, c domain.Card) {
	fmt.Fprintf(w, "%s  %s  votes=%d likes=%d\n", c.ID, c.Title, c.Votes, c.Likes)
}

func printComments(w io.Writer, comments []domain.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet.")
		return
	}
	for _, c := range comments {
		author := c.Author
		if author == "" {
			author = "Anonymous"
		}
		fmt.Fprintf(w, "%s  %s (%s): %s\n", c.ID, author, c.CreatedAt.Format(time.DateTime), c.Message)
	}
}

func printGifs(w io.Writer, gifs []giphy.GIF) {
	if giphy.IsFallback(gifs) {
		fmt.Fprintln(w, "GIPHY unavailable, showing fallback GIFs")
	}
	for _, g := range gifs {
		fmt.Fprintf(w, "%s\t%s\n", g.ID, g.URL)
	}
}
