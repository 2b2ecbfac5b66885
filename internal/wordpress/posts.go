package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Post is the logical post submitted to a site. Category and tag names are
// resolved to remote ids at publish time.
type Post struct {
	Title            string
	Content          string
	Status           string // draft, publish, private, future
	Excerpt          string
	MetaDescription  string
	Categories       []string
	Tags             []string
	FeaturedImageURL string
	PublishAt        time.Time
}

// PublishResult reports a successful remote write
type PublishResult struct {
	RemoteID         int      `json:"remote_id"`
	URL              string   `json:"url,omitempty"`
	Status           string   `json:"status"`
	Title            string   `json:"title"`
	Method           string   `json:"method"`
	UnresolvedTerms  []string `json:"unresolved_terms,omitempty"`
	FeaturedImageSet bool     `json:"featured_image_set,omitempty"`
}

// PostSummary is one entry of a remote post listing
type PostSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Author  int    `json:"author"`
}

// UpdateFields carries the editable remote post fields; nil means unchanged
type UpdateFields struct {
	Title   *string
	Content *string
	Status  *string
}

// CreatePost resolves taxonomy, then submits the post over REST. If the
// REST write fails for any reason the XML-RPC fallback is attempted exactly
// once; when both fail the combined error names each transport's failure.
// Unresolved term names degrade the post silently and are reported in the
// result. Write paths are never retried.
func (c *Client) CreatePost(ctx context.Context, p *Post) (*PublishResult, error) {
	categoryIDs, unresolvedCats := c.ResolveTerms(ctx, TermCategory, p.Categories)
	tagIDs, unresolvedTags := c.ResolveTerms(ctx, TermTag, p.Tags)
	unresolved := append(unresolvedCats, unresolvedTags...)
	if len(unresolved) > 0 {
		c.log.Warn().Strs("names", unresolved).Msg("Publishing with partially resolved taxonomy")
	}

	var failures []string
	for _, t := range c.transports() {
		result, err := t.create(ctx, p, categoryIDs, tagIDs)
		if err != nil {
			c.log.Warn().Err(err).Str("transport", t.name()).Msg("Post creation failed")
			failures = append(failures, fmt.Sprintf("%s: %v", t.name(), err))
			continue
		}

		result.UnresolvedTerms = unresolved
		if p.FeaturedImageURL != "" && result.Method == "rest" {
			if err := c.setFeaturedImage(ctx, result.RemoteID, p.FeaturedImageURL); err != nil {
				// Non-fatal: the post exists, only the image is missing
				c.log.Warn().Err(err).Int("post_id", result.RemoteID).Msg("Featured image attach failed")
			} else {
				result.FeaturedImageSet = true
			}
		}

		c.log.Info().
			Int("remote_id", result.RemoteID).
			Str("transport", result.Method).
			Str("status", result.Status).
			Msg("Post created")
		return result, nil
	}

	return nil, &Error{
		Kind:   KindRemoteRejected,
		Reason: "post creation failed on all transports (" + strings.Join(failures, "; ") + ")",
	}
}

// SchedulePost creates a post with status "future" at the given instant.
// A publish time that is not strictly in the future is rejected before any
// network call. Scheduling has no legacy fallback.
func (c *Client) SchedulePost(ctx context.Context, p *Post, publishAt time.Time) (*PublishResult, error) {
	if !publishAt.After(c.now()) {
		return nil, fmt.Errorf("publish date must be in the future")
	}

	scheduled := *p
	scheduled.Status = "future"
	scheduled.PublishAt = publishAt

	categoryIDs, unresolvedCats := c.ResolveTerms(ctx, TermCategory, p.Categories)
	tagIDs, unresolvedTags := c.ResolveTerms(ctx, TermTag, p.Tags)

	rest := &restTransport{c: c}
	result, err := rest.create(ctx, &scheduled, categoryIDs, tagIDs)
	if err != nil {
		return nil, err
	}
	result.UnresolvedTerms = append(unresolvedCats, unresolvedTags...)
	return result, nil
}

// UpdatePost edits an existing remote post. There is no legacy fallback
// for updates; a non-2xx response is surfaced as a rejection.
func (c *Client) UpdatePost(ctx context.Context, remoteID int, fields UpdateFields) (*PublishResult, error) {
	payload := map[string]interface{}{}
	if fields.Title != nil {
		payload["title"] = *fields.Title
	}
	if fields.Content != nil {
		payload["content"] = *fields.Content
	}
	if fields.Status != nil {
		payload["status"] = *fields.Status
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	resp, err := c.doJSON(ctx, http.MethodPost, c.restURL(fmt.Sprintf("/posts/%d", remoteID)), payload, c.writeTimeout)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:   KindRemoteRejected,
			Reason: fmt.Sprintf("post update returned %s: %s", resp.Status, readBody(resp)),
		}
	}

	var updated restPost
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("decode updated post: %w", err)
	}
	return &PublishResult{
		RemoteID: updated.ID,
		URL:      updated.Link,
		Status:   updated.Status,
		Title:    updated.Title.Rendered,
		Method:   "rest",
	}, nil
}

// DeletePost removes a remote post; force skips the trash
func (c *Client) DeletePost(ctx context.Context, remoteID int, force bool) error {
	url := c.restURL(fmt.Sprintf("/posts/%d?force=%t", remoteID, force))
	resp, err := c.doJSON(ctx, http.MethodDelete, url, nil, c.writeTimeout)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			Kind:   KindRemoteRejected,
			Reason: fmt.Sprintf("post delete returned %s: %s", resp.Status, readBody(resp)),
		}
	}
	return nil
}

// ListPosts returns up to limit remote posts filtered by status, ordered by
// descending publish date on the remote side. Content is truncated to a
// short excerpt.
func (c *Client) ListPosts(ctx context.Context, status string, limit int) ([]PostSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	if status == "" {
		status = "any"
	}

	url := c.restURL(fmt.Sprintf("/posts?per_page=%d&status=%s&orderby=date&order=desc", limit, status))
	resp, err := c.getWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:   KindRemoteRejected,
			Reason: fmt.Sprintf("post listing returned %s: %s", resp.Status, readBody(resp)),
		}
	}

	var remote []restPost
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("decode post listing: %w", err)
	}

	summaries := make([]PostSummary, 0, len(remote))
	for _, rp := range remote {
		summaries = append(summaries, PostSummary{
			ID:      rp.ID,
			Title:   rp.Title.Rendered,
			Excerpt: truncate(rp.Content.Rendered, 200),
			Status:  rp.Status,
			Date:    rp.Date,
			URL:     rp.Link,
			Author:  rp.Author,
		})
	}
	return summaries, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
