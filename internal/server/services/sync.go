package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hsaleh/talentdesk/internal/dbx"
	"github.com/hsaleh/talentdesk/internal/logging"
	"github.com/hsaleh/talentdesk/internal/server/models"
	"github.com/hsaleh/talentdesk/internal/server/repositories/repomanager"
	"github.com/hsaleh/talentdesk/internal/wire"
)

// SyncService applies pushed batches. A batch is one transaction: either the
// whole snapshot lands, or none of it does, so a client retry after a failed
// push is always safe.
type SyncService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewSyncService(db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) *SyncService {
	return &SyncService{db: db, repos: repos, log: log}
}

// ApplyBatch upserts every record in the batch for userID, keyed by
// (user, odId) — except categories, which are replaced wholesale.
//
// Categories land first so the talent upserts can resolve their numeric
// category references against the fresh rows; talents precede bookings for
// the same reason.
func (s *SyncService) ApplyBatch(ctx context.Context, userID string, batch wire.Batch) error {
	err := withTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if batch.Categories != nil {
			rows := make([]models.Category, 0, len(batch.Categories))
			for _, c := range batch.Categories {
				rows = append(rows, models.Category{
					OdID:      c.OdID,
					Name:      c.Name,
					NameAr:    c.NameAr,
					SortOrder: c.Order,
				})
			}
			if err := s.repos.Categories(tx).ReplaceAll(ctx, userID, rows); err != nil {
				return err
			}
		}

		talentRepo := s.repos.Talents(tx)
		for _, t := range batch.Talents {
			price, err := decimal.NewFromString(t.PricePerProject)
			if err != nil {
				return fmt.Errorf("invalid price for talent %s: %w", t.OdID, err)
			}
			payload, err := json.Marshal(t)
			if err != nil {
				return err
			}
			row := &models.Talent{
				UserID:       userID,
				OdID:         t.OdID,
				Name:         t.Name,
				CategoryOdID: t.CategoryOdID,
				Price:        price,
				Payload:      payload,
			}
			if err := talentRepo.Upsert(ctx, row); err != nil {
				return err
			}
		}

		projectRepo := s.repos.Projects(tx)
		for _, p := range batch.Projects {
			payload, err := json.Marshal(p)
			if err != nil {
				return err
			}
			row := &models.Project{
				UserID:  userID,
				OdID:    p.OdID,
				Name:    p.Name,
				Status:  p.Status,
				Payload: payload,
			}
			if err := projectRepo.Upsert(ctx, row); err != nil {
				return err
			}
		}

		bookingRepo := s.repos.Bookings(tx)
		for _, b := range batch.Bookings {
			payload, err := json.Marshal(b)
			if err != nil {
				return err
			}
			row := &models.Booking{
				UserID:     userID,
				OdID:       b.OdID,
				TalentOdID: b.TalentOdID,
				Payload:    payload,
			}
			if err := bookingRepo.Upsert(ctx, row); err != nil {
				return err
			}
		}

		if batch.Settings != nil {
			payload, err := json.Marshal(batch.Settings)
			if err != nil {
				return err
			}
			row := &models.Settings{UserID: userID, Payload: payload}
			if err := s.repos.Settings(tx).Upsert(ctx, row); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.log.Error(ctx, "batch apply failed", "user", userID, "error", err)
		return err
	}

	s.log.Info(ctx, "batch applied",
		"user", userID,
		"talents", len(batch.Talents),
		"projects", len(batch.Projects),
		"categories", len(batch.Categories),
		"bookings", len(batch.Bookings))
	return nil
}
