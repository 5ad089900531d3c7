// Package objstore uploads generated documents to a bucket-style object
// storage REST API and derives the public URL for delivered files.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	token   string
	bucket  string
	httpc   *http.Client
}

func New(baseURL, token, bucket string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		bucket:  bucket,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload puts the bytes at path within the bucket, overwriting any previous
// version, and returns the public URL.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("storage returned %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, path), nil
}
