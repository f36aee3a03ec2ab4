package repository

import (
	"context"
	"time"

	"lariat/internal/config"
	"lariat/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.QRCode{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveLink inserts a new link. The unique index on short_code makes this the
// final authority on code uniqueness: a losing racer gets
// gorm.ErrDuplicatedKey.
func (r *MySQLRepository) SaveLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkByCode retrieves a link by its short code
func (r *MySQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by ID, scoped to its owner
func (r *MySQLRepository) GetLinkByID(ctx context.Context, id, userID string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks returns a page of a user's links, newest first
func (r *MySQLRepository) ListLinks(ctx context.Context, userID string, offset, limit int) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&links).Error
	return links, err
}

// CountLinks returns the total number of a user's links
func (r *MySQLRepository) CountLinks(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// UpdateLink applies a partial update to a link
func (r *MySQLRepository) UpdateLink(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteLink removes a link and cascades to its click events
func (r *MySQLRepository) DeleteLink(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.TargetLink, id).
			Delete(&model.ClickEvent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Link{}).Error
	})
}

// CheckShortCodeExists checks whether a short code is already taken
func (r *MySQLRepository) CheckShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// SaveQRCode inserts a new QR code
func (r *MySQLRepository) SaveQRCode(ctx context.Context, qr *model.QRCode) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

// GetQRCodeByID retrieves a QR code by ID without owner scoping. The scan
// path is unauthenticated.
func (r *MySQLRepository) GetQRCodeByID(ctx context.Context, id string) (*model.QRCode, error) {
	var qr model.QRCode
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&qr).Error
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// GetUserQRCode retrieves a QR code by ID, scoped to its owner
func (r *MySQLRepository) GetUserQRCode(ctx context.Context, id, userID string) (*model.QRCode, error) {
	var qr model.QRCode
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&qr).Error
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

// ListQRCodes returns all of a user's QR codes, newest first
func (r *MySQLRepository) ListQRCodes(ctx context.Context, userID string) ([]model.QRCode, error) {
	var qrs []model.QRCode
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&qrs).Error
	return qrs, err
}

// DeleteQRCode removes a QR code and cascades to its click events
func (r *MySQLRepository) DeleteQRCode(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.TargetQRCode, id).
			Delete(&model.ClickEvent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.QRCode{}).Error
	})
}

// RecordClick appends a click event and updates the target's counters in one
// transaction. The target row is locked first (SELECT ... FOR UPDATE), so two
// concurrent recordings against one target fully serialize: the distinct-IP
// recompute always sees every committed event, and a later transaction cannot
// overwrite unique_clicks with a stale snapshot. The click counter itself is
// bumped with an atomic SQL expression.
func (r *MySQLRepository) RecordClick(ctx context.Context, ev *model.ClickEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked struct{ ID string }
		if err := tx.Table(targetTable(ev.TargetKind)).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", ev.TargetID).
			Take(&locked).Error; err != nil {
			return err
		}

		if err := tx.Create(ev).Error; err != nil {
			return err
		}

		var distinct int64
		if err := tx.Model(&model.ClickEvent{}).
			Where("target_kind = ? AND target_id = ?", ev.TargetKind, ev.TargetID).
			Distinct("ip_address").
			Count(&distinct).Error; err != nil {
			return err
		}

		return tx.Table(targetTable(ev.TargetKind)).
			Where("id = ?", ev.TargetID).
			Updates(map[string]interface{}{
				"clicks":        gorm.Expr("clicks + ?", 1),
				"unique_clicks": distinct,
			}).Error
	})
}

// GetClickEvents returns a target's events newest first, optionally bounded
// to timestamps at or after since.
func (r *MySQLRepository) GetClickEvents(ctx context.Context, kind model.TargetKind, targetID string, since *time.Time) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Order("timestamp DESC")

	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}

	err := query.Find(&events).Error
	return events, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func targetTable(kind model.TargetKind) string {
	if kind == model.TargetQRCode {
		return model.QRCode{}.TableName()
	}
	return model.Link{}.TableName()
}
