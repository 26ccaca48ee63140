// Package cli is the interactive terminal front end: a small REPL over the
// local stores with opportunistic sync to the remote service.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/hsaleh/talentdesk/internal/client/api"
	"github.com/hsaleh/talentdesk/internal/client/client"
	"github.com/hsaleh/talentdesk/internal/client/config"
	"github.com/hsaleh/talentdesk/internal/client/services"
	"github.com/hsaleh/talentdesk/internal/client/store"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	stores   *store.Stores
	auth     *services.AuthService
	sync     *services.Orchestrator
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	kvs, db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewJSON()
	apiClient := api.New(c.ServerEndpointAddr)
	stores := store.New(kvs, idgen.New(nil), nil, logger)
	auth := services.NewAuthService(apiClient, kvs, logger)
	sync := services.NewOrchestrator(stores, apiClient, auth, logger)

	return &App{
		config: c,
		db:     db,
		stores: stores,
		auth:   auth,
		sync:   sync,
		api:    apiClient,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.SessionToken(context.Background()) != ""
}
