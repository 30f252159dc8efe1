package session

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"strings"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const TokenExpiration = 24 * time.Hour

var TokenCache = cache.New(TokenExpiration, 1*time.Minute)

type LoginRequest struct {
	UserID types.ID `json:"userId" binding:"required"`
}

const KeySecCtx = "SecCtx"
const KeySecToken = "sec_token"

// MembershipLoader reloads the memberships of a user on every request so
// grants made after login are visible.
type MembershipLoader func(uid types.ID) authority.Memberships

func ExtractSessionFromGinContext(ctx *gin.Context) *Session {
	value, found := ctx.Get(KeySecCtx)
	if !found {
		return &Session{Context: ctx.Request.Context()}
	}
	s0, ok := value.(*Session)
	if !ok || s0.Token == "" {
		return &Session{Context: ctx.Request.Context()}
	}
	s := s0.Clone()
	s.Context = ctx.Request.Context()
	return &s
}

func SimpleAuthFilter(loader MembershipLoader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := findToken(ctx)
		if token == "" {
			panic(bizerror.ErrUnauthenticated)
		}
		value, found := TokenCache.Get(token)
		if !found {
			panic(bizerror.ErrUnauthenticated)
		}
		s, ok := value.(*Session)
		if !ok {
			panic(bizerror.ErrUnauthenticated)
		}
		if loader != nil {
			c := s.Clone()
			c.Memberships = loader(s.Identity.ID)
			s = &c
		}
		InjectSessionIntoGinContext(ctx, s)
		ctx.Next()
	}
}

func InjectSessionIntoGinContext(ctx *gin.Context, s *Session) {
	if s != nil && s.Token != "" {
		ctx.Set(KeySecCtx, s)
	}
}

// StoreSession writes s back to the token cache for its remaining lifetime.
func StoreSession(s *Session) {
	if s == nil || s.Token == "" {
		return
	}
	ttl := TokenExpiration - time.Since(s.SigningTime)
	if ttl <= 0 {
		TokenCache.Delete(s.Token)
		return
	}
	c := s.Clone()
	c.Context = nil
	TokenCache.Set(s.Token, &c, ttl)
}

func findToken(ctx *gin.Context) string {
	if token, err := ctx.Cookie(KeySecToken); err == nil && token != "" {
		return token
	}
	auth := ctx.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
