package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	jwt "vidtube.com/pkg"
	"vidtube.com/pkg/errno"
)

// Auth implements the double-token scheme: a live access token passes, an
// expired one is reissued on the fly when the refresh token still checks
// out, anything else is rejected.
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if jwt.IsAccessTokenAvailable(ctx, c) {
			c.Next(ctx)
			return
		}
		if jwt.IsRefreshTokenAvailable(ctx, c) {
			jwt.GenerateAccessToken(ctx, c)
			c.Next(ctx)
			return
		}
		handlers.SendError(c, errno.TokenInvailedErr)
		c.Abort()
	}
}
