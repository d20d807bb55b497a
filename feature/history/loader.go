package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates a new history feature. It is disabled without a database.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo := NewRepository(db)
	return &Feature{repo: repo, handler: NewHandler(repo, logger), logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.repo.db != nil
}

// Load migrates the archive table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	missing, err := f.repo.Migrate()
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		f.logger.Warn("Archive table is missing columns", zap.Strings("columns", missing))
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Repository returns the feature's record store.
func (f *Feature) Repository() *Repository {
	return f.repo
}
