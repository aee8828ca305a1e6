package resource

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"photocatalog/internal/domain"
)

// maxRemoteSize caps how much of a remote resource is read.
const maxRemoteSize = 32 << 20

type HTTPResolver struct {
	client *http.Client
}

// NewHTTPResolver returns a resolver for http and https references.
func NewHTTPResolver(client *http.Client) *HTTPResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPResolver{client: client}
}

func (r *HTTPResolver) Resolve(ctx context.Context, ref string) (*domain.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, unavailable(ref, fmt.Errorf("failed to create request: %w", err))
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, unavailable(ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(ref, fmt.Errorf("remote returned status: %d", resp.StatusCode))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, unavailable(ref, err)
	}
	if len(data) > maxRemoteSize {
		return nil, unavailable(ref, fmt.Errorf("resource larger than %d bytes", maxRemoteSize))
	}

	contentType := mimetype.Detect(data).String()
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && strings.HasPrefix(mt, "image/") {
		contentType = mt
	}
	return &domain.Resource{Data: data, ContentType: contentType}, nil
}

// SchemeResolver sends http and https references to Remote and everything
// else to Local.
type SchemeResolver struct {
	Local  domain.ResourceResolver
	Remote domain.ResourceResolver
}

func (r *SchemeResolver) Resolve(ctx context.Context, ref string) (*domain.Resource, error) {
	lower := strings.ToLower(strings.TrimSpace(ref))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if r.Remote == nil {
			return nil, unavailable(ref, fmt.Errorf("remote resources disabled"))
		}
		return r.Remote.Resolve(ctx, strings.TrimSpace(ref))
	}
	return r.Local.Resolve(ctx, ref)
}
