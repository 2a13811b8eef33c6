package cli

import (
	"bufio"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/vanda-app/vanda-client/internal/client/api"
	"github.com/vanda-app/vanda-client/internal/client/config"
	"github.com/vanda-app/vanda-client/internal/client/keystore"
	"github.com/vanda-app/vanda-client/internal/client/session"
	"github.com/vanda-app/vanda-client/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	dir := c.KeystoreDir
	if dir == "" {
		d, err := keystore.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	store, err := keystore.NewFileStore(dir)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, &http.Client{Timeout: c.RequestTimeout})
	sess := session.NewManager(apiClient, store, logger)

	return &App{
		config:  c,
		api:     apiClient,
		session: sess,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().SignedIn()
}
