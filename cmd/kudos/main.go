// Command kudos is a terminal front end for the kudos board API. It keeps
// working against placeholder data when the server cannot be reached.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kudosboard/kudos-board/internal/config"
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/gateway"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/kudosboard/kudos-board/internal/mutation"
	"github.com/kudosboard/kudos-board/internal/placeholder"
	"github.com/kudosboard/kudos-board/internal/scope"
	pkglogger "github.com/kudosboard/kudos-board/pkg/logger"
)

func main() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(defaultDeps()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// deps are the pieces a session is built from; tests replace them.
type deps struct {
	newAPI    func(baseURL string, timeout time.Duration) gateway.API
	newGifs   func(cfg config.GiphyConfig) *giphy.Client
	generator func() *placeholder.Generator
}

func defaultDeps() deps {
	return deps{
		newAPI: func(baseURL string, timeout time.Duration) gateway.API {
			return gateway.New(baseURL, timeout, pkglogger.WithComponent("gateway"))
		},
		newGifs: func(cfg config.GiphyConfig) *giphy.Client {
			return giphy.NewClient(giphy.Config{
				APIKey:  cfg.APIKey,
				BaseURL: cfg.BaseURL,
				Rating:  cfg.Rating,
			}, pkglogger.WithComponent("giphy"))
		},
		generator: func() *placeholder.Generator { return placeholder.New() },
	}
}

// session is the client core for one command invocation.
type session struct {
	ctrl   *scope.Controller
	router *mutation.Router
	gifs   *giphy.Client
	limit  int
	out    io.Writer
}

type rootFlags struct {
	apiURL   string
	timeout  time.Duration
	logLevel string
}

func newRootCmd(d deps) *cobra.Command {
	var flags rootFlags
	s := &session{}

	root := &cobra.Command{
		Use:           "kudos",
		Short:         "Browse and edit kudos boards",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env := os.Getenv("APP_ENV")
			pkglogger.Init(cmd.ErrOrStderr(), env, "kudos-cli")
			pkglogger.SetLevel(flags.logLevel)

			cfg, err := config.Load(config.PathForEnv(env))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			baseURL := cfg.Client.APIURL
			if flags.apiURL != "" {
				baseURL = flags.apiURL
			}
			timeout := cfg.Client.TimeoutDuration()
			if flags.timeout > 0 {
				timeout = flags.timeout
			}

			log := pkglogger.WithComponent("cli")
			s.ctrl = scope.NewController(d.newAPI(baseURL, timeout), d.generator(), log)
			s.router = mutation.NewRouter(s.ctrl, log)
			s.gifs = d.newGifs(cfg.Giphy)
			s.limit = cfg.Giphy.Limit
			s.out = cmd.OutOrStdout()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.apiURL, "api", "", "API base URL (default from KUDOS_API_URL or config)")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per request timeout")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		boardsCmd(s),
		boardCmd(s),
		createBoardCmd(s),
		deleteBoardCmd(s),
		likeBoardCmd(s),
		createCardCmd(s),
		deleteCardCmd(s),
		upvoteCardCmd(s),
		likeCardCmd(s),
		commentsCmd(s),
		commentCmd(s),
		deleteCommentCmd(s),
		gifsCmd(s),
	)
	return root
}

// loadList loads the dashboard scope and prints its mode.
func (s *session) loadList(ctx context.Context) (*scope.BoardList, error) {
	list := s.ctrl.BoardList()
	if err := list.Load(ctx); err != nil {
		return nil, err
	}
	printMode(s.out, "boards", list.Status(), "")
	return list, nil
}

// loadDetail resolves boardID against the dashboard, so placeholder and
// local boards keep their origin, then loads the board scope.
func (s *session) loadDetail(ctx context.Context, boardID string) (*scope.BoardDetail, error) {
	list := s.ctrl.BoardList()
	if err := list.Load(ctx); err != nil {
		return nil, err
	}
	target, ok := list.Find(boardID)
	if !ok {
		target = domain.Board{ID: boardID, Origin: domain.OriginServer}
	}

	detail := s.ctrl.BoardDetail(target)
	if err := detail.Load(ctx); err != nil {
		return nil, err
	}
	printMode(s.out, "board", detail.Status(), "")
	return detail, nil
}

// loadThread loads the board scope and then the comments of one card.
func (s *session) loadThread(ctx context.Context, boardID, cardID string) (*scope.CardComments, error) {
	detail, err := s.loadDetail(ctx, boardID)
	if err != nil {
		return nil, err
	}
	card, ok := detail.FindCard(cardID)
	if !ok {
		return nil, fmt.Errorf("card %s: %w", cardID, mutation.ErrNotFound)
	}

	thread := s.ctrl.CardComments(card)
	if err := thread.Load(ctx); err != nil {
		return nil, err
	}
	printMode(s.out, "comments", thread.Status(), thread.Notice())
	return thread, nil
}
