package dashboard

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/querycache"
)

// EnsureSession verifies the stored token by resolving the current user,
// cached under KeyUser so repeated gate checks cost one request. When the
// check fails for any reason the stored token is cleared and the cached
// profile is dropped, forcing a fresh login.
func (s *Service) EnsureSession(ctx context.Context) (*client.User, error) {
	u, err := querycache.Fetch(ctx, s.cache, KeyUser(), func(ctx context.Context) (*client.User, error) {
		return s.api.Me(ctx)
	})
	if err != nil {
		if clearErr := s.api.Logout(); clearErr != nil {
			log.Warn().Err(clearErr).Msg("clearing stored token failed")
		}
		s.cache.Invalidate(KeyUser())
		return nil, err
	}
	return u, nil
}
