package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// setFeaturedImage downloads the source image, uploads it to the site's
// media collection and attaches the resulting media id to the post. Any
// failure comes back as a media-attach error; the caller treats it as
// non-fatal.
func (c *Client) setFeaturedImage(ctx context.Context, remoteID int, imageURL string) error {
	mediaID, err := c.uploadMedia(ctx, imageURL)
	if err != nil {
		return &Error{Kind: KindMediaAttach, Reason: fmt.Sprintf("media upload failed: %v", err), Err: err}
	}

	resp, err := c.doJSON(ctx, http.MethodPost, c.restURL(fmt.Sprintf("/posts/%d", remoteID)),
		map[string]int{"featured_media": mediaID}, c.writeTimeout)
	if err != nil {
		return &Error{Kind: KindMediaAttach, Reason: fmt.Sprintf("featured image attach failed: %v", err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			Kind:   KindMediaAttach,
			Reason: fmt.Sprintf("featured image attach returned %s: %s", resp.Status, readBody(resp)),
		}
	}
	return nil
}

// uploadMedia fetches the image bytes and posts them to the media endpoint
func (c *Client) uploadMedia(ctx context.Context, imageURL string) (int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, err
	}
	imgResp, err := c.http.Do(req)
	if err != nil {
		return 0, classifyTransportErr(err)
	}
	defer imgResp.Body.Close()

	if imgResp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("image fetch returned %s", imgResp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(imgResp.Body, 32<<20))
	if err != nil {
		return 0, fmt.Errorf("read image bytes: %w", err)
	}

	filename := imageURL[strings.LastIndex(imageURL, "/")+1:]
	if !strings.Contains(filename, ".") {
		filename += ".jpg"
	}
	contentType := imgResp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	uploadCtx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	upload, err := http.NewRequestWithContext(uploadCtx, http.MethodPost, c.restURL("/media"), bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	upload.Header = c.authHeaders(ctx)
	upload.Header.Set("Content-Type", contentType)
	upload.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	resp, err := c.http.Do(upload)
	if err != nil {
		return 0, classifyTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("media upload returned %s: %s", resp.Status, readBody(resp))
	}

	var media struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return 0, fmt.Errorf("decode media response: %w", err)
	}
	return media.ID, nil
}
