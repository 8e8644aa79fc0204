package youtube

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moul.io/zapgorm2"
)

type History struct {
	db *gorm.DB
}

type HistoryEntry struct {
	VideoID      string    `json:"video_id" gorm:"primaryKey"`
	URL          string    `json:"url"`
	FileName     string    `json:"file_name"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

func NewHistory(dsn string) (*History, error) {
	log := zapgorm2.New(zap.L())
	log.IgnoreRecordNotFoundError = true
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: log,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open history %s", dsn)
	}

	err = db.AutoMigrate(&HistoryEntry{})
	if err != nil {
		return nil, err
	}

	return &History{db: db}, nil
}

// Save records entry, replacing any previous row for the same video id.
func (h *History) Save(entry *HistoryEntry) error {
	if entry.DownloadedAt.IsZero() {
		entry.DownloadedAt = time.Now()
	}
	return h.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

func (h *History) Get(videoID string) (entry *HistoryEntry, err error) {
	var e HistoryEntry
	err = h.db.First(&e, "video_id = ?", videoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		return
	}
	return &e, nil
}

func (h *History) List() ([]HistoryEntry, error) {
	var entries []HistoryEntry
	err := h.db.Order("downloaded_at desc").Find(&entries).Error
	return entries, err
}

func (h *History) Close() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
