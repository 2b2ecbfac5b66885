package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TermKind selects the remote taxonomy collection
type TermKind string

const (
	TermCategory TermKind = "categories"
	TermTag      TermKind = "tags"
)

type term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ResolveTerms maps human-readable names to remote numeric ids, creating
// terms that do not exist yet. Matching is a case-insensitive exact match
// against the first page of the remote collection. A name whose lookup or
// creation fails is omitted rather than aborting the batch; unresolved
// names come back in the second return value so the caller can decide how
// loudly to complain.
func (c *Client) ResolveTerms(ctx context.Context, kind TermKind, names []string) ([]int, []string) {
	if len(names) == 0 {
		return nil, nil
	}

	existing := c.listTerms(ctx, kind)

	var (
		ids        []int
		unresolved []string
	)
	for _, name := range names {
		if id, ok := existing[strings.ToLower(name)]; ok {
			ids = append(ids, id)
			continue
		}

		id, err := c.createTerm(ctx, kind, name)
		if err != nil {
			c.log.Warn().Err(err).Str("kind", string(kind)).Str("name", name).Msg("Term resolution failed")
			unresolved = append(unresolved, name)
			continue
		}
		ids = append(ids, id)
	}

	return ids, unresolved
}

// listTerms fetches the first page of the collection, bounded at 100
// entries. A failed listing yields an empty map; each name then falls
// through to creation.
func (c *Client) listTerms(ctx context.Context, kind TermKind) map[string]int {
	byName := make(map[string]int)

	resp, err := c.getWithRetry(ctx, c.restURL("/"+string(kind)+"?per_page=100"))
	if err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("Term listing failed")
		return byName
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("kind", string(kind)).Msg("Term listing rejected")
		return byName
	}

	var terms []term
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		c.log.Warn().Err(err).Str("kind", string(kind)).Msg("Malformed term listing")
		return byName
	}

	for _, t := range terms {
		byName[strings.ToLower(t.Name)] = t.ID
	}
	return byName
}

func (c *Client) createTerm(ctx context.Context, kind TermKind, name string) (int, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, c.restURL("/"+string(kind)), map[string]string{"name": name}, c.writeTimeout)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return 0, &Error{
			Kind:   KindRemoteRejected,
			Reason: "term creation returned " + resp.Status + ": " + readBody(resp),
		}
	}

	var created term
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, err
	}
	return created.ID, nil
}
