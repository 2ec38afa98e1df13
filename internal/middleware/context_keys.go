package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
)

const actorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the request
// context. It returns the actor and whether one was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	return ActorFromCtx(c.Request.Context())
}

// ActorFromCtx retrieves the authenticated actor from a standard context.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(domain.Actor)
	return actor, ok
}
