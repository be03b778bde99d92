package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/jwt"
)

const (
	CookieName  = "xtube_token"
	GuestCookie = "xtube_guest"

	guestCookieMaxAge = 365 * 24 * 3600
	userContextKey    = "user"
)

// AttachUser resolves the session cookie into a user and stashes it on the
// request context. A bad or stale token just means an anonymous request.
func AttachUser() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if token := string(c.Cookie(CookieName)); token != "" {
			userId, err := jwt.ParseToken(token)
			if err != nil {
				hlog.CtxWarnf(ctx, "ignoring invalid session token: %v", err)
			} else {
				db.View(ctx, func(st *db.Store) {
					// Stash a snapshot, not the store-owned pointer, so
					// nothing reads store state outside its lock.
					if u := st.FindUserById(userId); u != nil {
						session := *u
						c.Set(userContextKey, &session)
					}
				})
			}
		}
		c.Next(ctx)
	}
}

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		RequireUser(),
	)
}

// RequireUser rejects requests that AttachUser left anonymous.
func RequireUser() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if CurrentUser(c) == nil {
			c.JSON(consts.StatusUnauthorized, utils.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

// CurrentUser returns the authenticated user of this request, or nil.
func CurrentUser(c *app.RequestContext) *db.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*db.User); ok {
			return u
		}
	}
	return nil
}

// IdentityKey names whoever is reacting: the user id when authenticated,
// otherwise a durable guest id issued as a year-long cookie on first use.
func IdentityKey(c *app.RequestContext) string {
	guestId := string(c.Cookie(GuestCookie))
	if guestId == "" {
		guestId = uuid.NewString()
		c.SetCookie(GuestCookie, guestId, guestCookieMaxAge, "/", "",
			protocol.CookieSameSiteLaxMode, false, true)
	}
	if u := CurrentUser(c); u != nil {
		return u.UserId
	}
	return guestId
}

// SetAuthCookie issues the session cookie after signup or login.
func SetAuthCookie(c *app.RequestContext, userId string) error {
	token, err := jwt.GenerateToken(userId)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, int(jwt.TokenTTL.Seconds()), "/", "",
		protocol.CookieSameSiteLaxMode, false, true)
	return nil
}

func ClearAuthCookie(c *app.RequestContext) {
	c.SetCookie(CookieName, "", -1, "/", "",
		protocol.CookieSameSiteLaxMode, false, true)
}
