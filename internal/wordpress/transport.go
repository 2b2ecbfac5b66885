package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// postTransport is one way of creating a post on the remote site. The
// writer tries transports in priority order and aggregates their failures.
type postTransport interface {
	name() string
	create(ctx context.Context, p *Post, categoryIDs, tagIDs []int) (*PublishResult, error)
}

func (c *Client) transports() []postTransport {
	return []postTransport{
		&restTransport{c: c},
		&rpcTransport{c: c},
	}
}

// restTransport creates posts through the wp/v2 REST endpoint
type restTransport struct {
	c *Client
}

func (t *restTransport) name() string { return "rest" }

type renderedField struct {
	Rendered string `json:"rendered"`
}

type restPost struct {
	ID      int           `json:"id"`
	Link    string        `json:"link"`
	Status  string        `json:"status"`
	Date    string        `json:"date"`
	Author  int           `json:"author"`
	Title   renderedField `json:"title"`
	Content renderedField `json:"content"`
}

func (t *restTransport) create(ctx context.Context, p *Post, categoryIDs, tagIDs []int) (*PublishResult, error) {
	payload := map[string]interface{}{
		"title":   p.Title,
		"content": p.Content,
		"status":  p.Status,
		"excerpt": p.Excerpt,
	}
	if len(categoryIDs) > 0 {
		payload["categories"] = categoryIDs
	}
	if len(tagIDs) > 0 {
		payload["tags"] = tagIDs
	}
	if p.MetaDescription != "" {
		// Yoast SEO compatible meta field
		payload["meta"] = map[string]string{"_yoast_wpseo_metadesc": p.MetaDescription}
	}
	if !p.PublishAt.IsZero() {
		payload["date"] = p.PublishAt.Format(time.RFC3339)
	}

	resp, err := t.c.doJSON(ctx, http.MethodPost, t.c.restURL("/posts"), payload, t.c.writeTimeout)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:   KindRemoteRejected,
			Reason: fmt.Sprintf("post creation returned %s: %s", resp.Status, readBody(resp)),
		}
	}

	var created restPost
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created post: %w", err)
	}

	return &PublishResult{
		RemoteID: created.ID,
		URL:      created.Link,
		Status:   created.Status,
		Title:    created.Title.Rendered,
		Method:   t.name(),
	}, nil
}

// rpcTransport creates posts through the legacy xmlrpc.php endpoint. Used
// only when the REST path has already failed.
type rpcTransport struct {
	c *Client
}

func (t *rpcTransport) name() string { return "xmlrpc" }

func (t *rpcTransport) create(ctx context.Context, p *Post, categoryIDs, tagIDs []int) (*PublishResult, error) {
	rpc, err := t.c.newRPC(t.c.baseURL+"/xmlrpc.php", t.c.writeTimeout)
	if err != nil {
		return nil, fmt.Errorf("xmlrpc client init: %w", err)
	}

	content := map[string]interface{}{
		"post_title":   p.Title,
		"post_content": p.Content,
		"post_status":  p.Status,
	}
	if p.Excerpt != "" {
		content["post_excerpt"] = p.Excerpt
	}
	termsNames := map[string]interface{}{}
	if len(p.Categories) > 0 {
		termsNames["category"] = p.Categories
	}
	if len(p.Tags) > 0 {
		termsNames["post_tag"] = p.Tags
	}
	if len(termsNames) > 0 {
		content["terms_names"] = termsNames
	}

	callCtx, cancel := context.WithTimeout(ctx, t.c.writeTimeout)
	defer cancel()

	var postID string
	if err := rpcCall(callCtx, rpc, "wp.newPost", []interface{}{0, t.c.username, t.c.password, content}, &postID); err != nil {
		return nil, fmt.Errorf("wp.newPost: %w", err)
	}

	id, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("unexpected wp.newPost id %q: %w", postID, err)
	}

	return &PublishResult{
		RemoteID: id,
		Status:   p.Status,
		Title:    p.Title,
		Method:   t.name(),
	}, nil
}
