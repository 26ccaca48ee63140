// Package repomanager wires the per-entity repositories over one database
// handle. Factories take a dbx.DBTX so services can bind repositories either
// to the pool or to a transaction they opened.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/hsaleh/talentdesk/internal/dbx"
	"github.com/hsaleh/talentdesk/internal/server/repositories/bookings"
	"github.com/hsaleh/talentdesk/internal/server/repositories/categories"
	"github.com/hsaleh/talentdesk/internal/server/repositories/projects"
	"github.com/hsaleh/talentdesk/internal/server/repositories/refreshtokens"
	"github.com/hsaleh/talentdesk/internal/server/repositories/settings"
	"github.com/hsaleh/talentdesk/internal/server/repositories/talents"
	"github.com/hsaleh/talentdesk/internal/server/repositories/users"
)

// RepositoryManager provides the repositories plus the shared connection.
type RepositoryManager interface {
	Conn() *sql.DB
	RunMigrations(ctx context.Context) error

	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Talents(db dbx.DBTX) talents.Repository
	Projects(db dbx.DBTX) projects.Repository
	Categories(db dbx.DBTX) categories.Repository
	Bookings(db dbx.DBTX) bookings.Repository
	Settings(db dbx.DBTX) settings.Repository
}
