package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Identity describes the authenticated remote user
type Identity struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// ConnectionResult is the normalized outcome of a connection test
type ConnectionResult struct {
	Success bool      `json:"success"`
	Method  string    `json:"method,omitempty"` // rest or xmlrpc
	User    *Identity `json:"user,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// TestConnection issues an authenticated identity request against the REST
// API. A 404 on the identity endpoint means the REST API may be disabled,
// so the legacy XML-RPC transport is probed before declaring failure.
// Every failure mode maps to a distinct reason the caller can surface
// verbatim.
func (c *Client) TestConnection(ctx context.Context) *ConnectionResult {
	resp, err := c.getWithRetry(ctx, c.restURL("/users/me?context=edit"))
	if err != nil {
		return &ConnectionResult{Success: false, Reason: err.Error()}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var id Identity
		if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
			return &ConnectionResult{Success: false, Reason: fmt.Sprintf("malformed identity response: %v", err)}
		}
		return &ConnectionResult{Success: true, Method: "rest", User: &id}

	case http.StatusUnauthorized:
		return &ConnectionResult{Success: false, Reason: "invalid credentials"}

	case http.StatusForbidden:
		return &ConnectionResult{Success: false, Reason: "insufficient permission"}

	case http.StatusNotFound:
		// REST API absent; the legacy transport may still be enabled
		if res := c.probeXMLRPC(ctx); res != nil {
			return res
		}
		return &ConnectionResult{Success: false, Reason: "REST API unavailable and XML-RPC probe failed"}

	default:
		return &ConnectionResult{Success: false, Reason: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, readBody(resp))}
	}
}

// userBlog is the wp.getUsersBlogs response shape
type userBlog struct {
	BlogID   string `xmlrpc:"blogid"`
	BlogName string `xmlrpc:"blogName"`
	URL      string `xmlrpc:"url"`
	IsAdmin  bool   `xmlrpc:"isAdmin"`
}

// probeXMLRPC validates credentials through the legacy transport. Returns
// nil when the transport itself is unusable.
func (c *Client) probeXMLRPC(ctx context.Context) *ConnectionResult {
	rpc, err := c.newRPC(c.baseURL+"/xmlrpc.php", c.probeTimeout)
	if err != nil {
		c.log.Debug().Err(err).Msg("XML-RPC client init failed")
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	var blogs []userBlog
	if err := rpcCall(callCtx, rpc, "wp.getUsersBlogs", []interface{}{c.username, c.password}, &blogs); err != nil {
		c.log.Debug().Err(err).Msg("XML-RPC probe failed")
		return nil
	}

	return &ConnectionResult{Success: true, Method: "xmlrpc"}
}
