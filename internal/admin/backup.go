package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/catalog"
)

// Backup is the export document: every collection plus the moment it was taken.
type Backup struct {
	Timestamp time.Time        `json:"timestamp"`
	Data      catalog.Snapshot `json:"data"`
}

// BackupFilename is the attachment name offered for a backup taken at t.
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("backup_connectvan_%s.json", t.UTC().Format("20060102_150405"))
}

// Export snapshots the whole catalog.
func (s *Service) Export(ctx context.Context) (Backup, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return Backup{}, err
	}
	return Backup{Timestamp: time.Now().UTC(), Data: snap}, nil
}

// ParseBackup decodes and validates a backup document. Partner categories are
// stored as free text, so any value is accepted here; only the forms restrict them.
func ParseBackup(r io.Reader) (Backup, error) {
	var b Backup
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return Backup{}, &catalog.ValidationError{Field: "backup", Reason: "is not valid JSON"}
	}
	if b.Data.Drivers == nil && b.Data.Partners == nil && b.Data.HeroImages == nil {
		return Backup{}, &catalog.ValidationError{Field: "data", Reason: "is required"}
	}
	seen := make(map[string]struct{}, len(b.Data.Drivers))
	for i, d := range b.Data.Drivers {
		if d.ID == "" || d.Name == "" {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.drivers[%d]", i), Reason: "needs id and name"}
		}
		if _, dup := seen[d.ID]; dup {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.drivers[%d]", i), Reason: "duplicate id"}
		}
		if hasBlank(d.Neighborhoods) {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.drivers[%d].neighborhoods", i), Reason: "has a blank entry"}
		}
		if hasBlank(d.Schools) {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.drivers[%d].schools", i), Reason: "has a blank entry"}
		}
		seen[d.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(b.Data.Partners))
	for i, p := range b.Data.Partners {
		if p.ID == "" || p.Name == "" {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.partners[%d]", i), Reason: "needs id and name"}
		}
		if _, dup := seen[p.ID]; dup {
			return Backup{}, &catalog.ValidationError{Field: fmt.Sprintf("data.partners[%d]", i), Reason: "duplicate id"}
		}
		seen[p.ID] = struct{}{}
	}
	if hasBlank(b.Data.HeroImages) {
		return Backup{}, &catalog.ValidationError{Field: "data.hero_images", Reason: "has a blank entry"}
	}
	return b, nil
}

func hasBlank(list []string) bool {
	for _, v := range list {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Import replaces the whole catalog with the backup contents.
func (s *Service) Import(ctx context.Context, b Backup) error {
	if err := s.store.Restore(ctx, b.Data); err != nil {
		return err
	}
	s.logger.Info("catalog restored",
		zap.Time("backup_timestamp", b.Timestamp),
		zap.Int("drivers", len(b.Data.Drivers)),
		zap.Int("partners", len(b.Data.Partners)),
		zap.Int("hero_images", len(b.Data.HeroImages)),
	)
	return nil
}
