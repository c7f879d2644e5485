package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"

	"vidtube.com/config"
	"vidtube.com/pkg/constants"
)

var (
	AccessTokenJwt  *jwt.HertzJWTMiddleware
	RefreshTokenJwt *jwt.HertzJWTMiddleware
)

func newMiddleware(key string, timeout time.Duration, lookup string) *jwt.HertzJWTMiddleware {
	middleware, err := jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(key),
		Timeout:     timeout,
		MaxRefresh:  timeout,
		IdentityKey: constants.IdentityKey,
		TokenLookup: lookup,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if userId, ok := data.(int64); ok {
				return jwt.MapClaims{constants.IdentityKey: userId}
			}
			return jwt.MapClaims{}
		},
	})
	if err != nil {
		hlog.Fatal("failed to init jwt middleware: ", err)
	}
	return middleware
}

func AccessTokenJwtInit() {
	AccessTokenJwt = newMiddleware(
		config.ConfigInfo.Jwt.AccessSecret,
		constants.AccessTokenExpire,
		"header: Authorization",
	)
}

func RefreshTokenJwtInit() {
	RefreshTokenJwt = newMiddleware(
		config.ConfigInfo.Jwt.RefreshSecret,
		constants.RefreshTokenExpire,
		"header: Refresh-Token",
	)
}

// GenerateTokens issues the access/refresh token pair for a user id.
func GenerateTokens(userId int64) (accessToken, refreshToken string, err error) {
	accessToken, _, err = AccessTokenJwt.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwt.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func claimsUserId(claims jwt.MapClaims) (int64, bool) {
	raw, ok := claims[constants.IdentityKey]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

func tokenAvailable(ctx context.Context, c *app.RequestContext, middleware *jwt.HertzJWTMiddleware) bool {
	claims, err := middleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < time.Now().Unix() {
		return false
	}
	userId, ok := claimsUserId(claims)
	if !ok {
		return false
	}
	c.Set(constants.IdentityKey, userId)
	return true
}

func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return tokenAvailable(ctx, c, AccessTokenJwt)
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return tokenAvailable(ctx, c, RefreshTokenJwt)
}

// GenerateAccessToken mints a fresh access token from a still-valid refresh
// token and exposes it through the New-Access-Token response header.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	userId, err := ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		hlog.Info("refresh without identity: ", err)
		return
	}
	token, _, err := AccessTokenJwt.TokenGenerator(userId)
	if err != nil {
		hlog.Error("failed to generate access token: ", err)
		return
	}
	c.Header("New-Access-Token", token)
}

// ConvertJWTPayloadToString returns the acting user identity the auth
// middleware stored on the request context.
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return nil, jwt.ErrEmptyAuthHeader
	}
	return v, nil
}
