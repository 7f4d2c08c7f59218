package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sssbpuc/campusd/internal/model"
)

// UpsertContentSection stores the JSON payload for a section, creating the
// row on first write.
func (s *Store) UpsertContentSection(ctx context.Context, c *model.ContentSection) error {
	c.UpdatedAt = time.Now().UTC()

	const q = `INSERT INTO content_sections (section, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (section) DO UPDATE SET
			data = excluded.data, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, s.rebind(q), c.Section, string(c.Data), c.UpdatedAt); err != nil {
		return fmt.Errorf("upsert content section: %w", err)
	}
	return nil
}

// GetContentSection returns one section by name.
func (s *Store) GetContentSection(ctx context.Context, section string) (*model.ContentSection, error) {
	var c model.ContentSection
	err := s.db.GetContext(ctx, &c,
		s.rebind("SELECT * FROM content_sections WHERE section = ?"), section)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content section: %w", err)
	}
	return &c, nil
}

// ListContentSections returns every stored section.
func (s *Store) ListContentSections(ctx context.Context) ([]model.ContentSection, error) {
	var sections []model.ContentSection
	if err := s.db.SelectContext(ctx, &sections,
		"SELECT * FROM content_sections ORDER BY section"); err != nil {
		return nil, fmt.Errorf("list content sections: %w", err)
	}
	return sections, nil
}
