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

// MemoryRepositoryManager backs the services with in-process repositories.
// The DBTX arguments are ignored; "transactions" are not isolated, which the
// service tests account for.
type MemoryRepositoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
	talents       *talents.MemoryRepository
	projects      *projects.MemoryRepository
	categories    *categories.MemoryRepository
	bookings      *bookings.MemoryRepository
	settings      *settings.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
		talents:       talents.NewMemoryRepository(),
		projects:      projects.NewMemoryRepository(),
		categories:    categories.NewMemoryRepository(),
		bookings:      bookings.NewMemoryRepository(),
		settings:      settings.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}

func (m *MemoryRepositoryManager) Talents(db dbx.DBTX) talents.Repository { return m.talents }

func (m *MemoryRepositoryManager) Projects(db dbx.DBTX) projects.Repository { return m.projects }

func (m *MemoryRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return m.categories
}

func (m *MemoryRepositoryManager) Bookings(db dbx.DBTX) bookings.Repository { return m.bookings }

func (m *MemoryRepositoryManager) Settings(db dbx.DBTX) settings.Repository { return m.settings }
