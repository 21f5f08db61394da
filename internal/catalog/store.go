package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rtgeorge/resourceboard/internal/db"
)

// likeEscaper neutralizes LIKE wildcards in user search text, so a
// search for a literal % or _ matches only itself.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Store reads and writes resource records in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store over the given database.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// List executes one QuerySpec and returns the requested page of records
// plus the total number of matching records. An empty result is not an
// error.
func (s *Store) List(ctx context.Context, spec QuerySpec) ([]Resource, int, error) {
	where := "WHERE category_slug = ?"
	args := []interface{}{spec.Category}
	if spec.Search != "" {
		where += ` AND (title LIKE ? ESCAPE '\' OR excerpt LIKE ? ESCAPE '\')`
		needle := "%" + likeEscaper.Replace(spec.Search) + "%"
		args = append(args, needle, needle)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM resources "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting resources: %w", err)
	}

	// OrderBy/Order come from the fixed SortMode table, never from raw
	// user input, so they can be spliced into the statement.
	orderCol := "published_at"
	if spec.OrderBy == "title" {
		orderCol = "title COLLATE NOCASE"
	}
	dir := "DESC"
	if spec.Order == "ASC" {
		dir = "ASC"
	}

	size := spec.PageSize
	if size < 1 {
		size = 1
	}
	page := spec.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`
SELECT id, category_slug, title, excerpt, thumbnail_url, permalink, download_url, purchase_url, video_url, published_at
FROM resources %s
ORDER BY %s %s
LIMIT ? OFFSET ?`, where, orderCol, dir)
	args = append(args, size, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var records []Resource
	for rows.Next() {
		var r Resource
		var published string
		if err := rows.Scan(&r.ID, &r.CategorySlug, &r.Title, &r.Excerpt, &r.ThumbnailURL,
			&r.Permalink, &r.DownloadURL, &r.PurchaseURL, &r.VideoURL, &published); err != nil {
			return nil, 0, fmt.Errorf("scanning resource: %w", err)
		}
		r.PublishedAt = parseStoredTime(published)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating resources: %w", err)
	}

	return records, total, nil
}

// PageCount converts a total record count to a page count for the given
// page size.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Upsert inserts a record, replacing any existing record with the same id.
func (s *Store) Upsert(ctx context.Context, r Resource) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO resources (id, category_slug, title, excerpt, thumbnail_url, permalink, download_url, purchase_url, video_url, published_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    category_slug = excluded.category_slug,
    title = excluded.title,
    excerpt = excluded.excerpt,
    thumbnail_url = excluded.thumbnail_url,
    permalink = excluded.permalink,
    download_url = excluded.download_url,
    purchase_url = excluded.purchase_url,
    video_url = excluded.video_url,
    published_at = excluded.published_at`,
		r.ID, r.CategorySlug, r.Title, r.Excerpt, r.ThumbnailURL,
		r.Permalink, r.DownloadURL, r.PurchaseURL, r.VideoURL,
		r.PublishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting resource %s: %w", r.ID, err)
	}
	return nil
}

// parseStoredTime accepts both RFC3339 (written by Upsert) and SQLite's
// datetime('now') format.
func parseStoredTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
