package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"
	"time"

	"github.com/autopress-api/internal/database"
	"github.com/autopress-api/internal/models"
)

// cannedDriver serves fixed rows for any query, standing in for Postgres
// so scan behavior can be exercised without a live database.
type cannedDriver struct {
	cols []string
	rows [][]driver.Value
}

func (d *cannedDriver) Open(string) (driver.Conn, error) { return &cannedConn{d: d}, nil }

type cannedConn struct{ d *cannedDriver }

func (c *cannedConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *cannedConn) Close() error                        { return nil }
func (c *cannedConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

func (c *cannedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return &cannedRows{cols: c.d.cols, rows: c.d.rows}, nil
}

type cannedRows struct {
	cols []string
	rows [][]driver.Value
	next int
}

func (r *cannedRows) Columns() []string { return r.cols }
func (r *cannedRows) Close() error      { return nil }

func (r *cannedRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}

var canned = &cannedDriver{}

func init() {
	sql.Register("canned", canned)
}

var postColumns = []string{
	"id", "user_id", "title", "content", "excerpt", "meta_description",
	"keyword", "status", "site_id", "remote_post_id", "remote_url",
	"created_at", "updated_at",
}

func cannedDB(t *testing.T, cols []string, rows [][]driver.Value) *database.DB {
	t.Helper()
	canned.cols = cols
	canned.rows = rows
	db, err := sql.Open("canned", "")
	if err != nil {
		t.Fatalf("open stub driver: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: db}
}

func postRow(id, siteID string) []driver.Value {
	now := time.Now()
	var site driver.Value
	if siteID != "" {
		site = siteID
	}
	return []driver.Value{
		id, "user-1", "Title", "Body", "", "", "coffee", "draft",
		site, int64(0), "", now, now,
	}
}

func TestGetByIDScansNullSiteID(t *testing.T) {
	repo := NewPostRepo(cannedDB(t, postColumns, [][]driver.Value{postRow("post-1", "")}))

	post, err := repo.GetByID(context.Background(), "post-1", "user-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if post == nil {
		t.Fatal("expected a post")
	}
	if post.SiteID != "" {
		t.Errorf("NULL site_id must map to empty string, got %q", post.SiteID)
	}
	if post.Status != models.PostStatusDraft {
		t.Errorf("status = %q", post.Status)
	}
}

func TestListByUserScansNullSiteID(t *testing.T) {
	repo := NewPostRepo(cannedDB(t, postColumns, [][]driver.Value{
		postRow("post-1", ""),
		postRow("post-2", "site-9"),
	}))

	posts, err := repo.ListByUser(context.Background(), "user-1", "", 10)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].SiteID != "" {
		t.Errorf("NULL site_id must map to empty string, got %q", posts[0].SiteID)
	}
	if posts[1].SiteID != "site-9" {
		t.Errorf("site_id = %q, want site-9", posts[1].SiteID)
	}
}
