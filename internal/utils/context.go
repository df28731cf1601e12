package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/middleware"
)

func CurrentIdentity(ctx *gin.Context) (auth.Identity, error) {
	value, exists := ctx.Get(middleware.ContextIdentityKey)

	if !exists {
		return auth.Identity{}, fmt.Errorf("no identity in context")
	}

	identity, ok := value.(auth.Identity)

	if !ok {
		return auth.Identity{}, fmt.Errorf("invalid identity type in context")
	}

	return identity, nil
}
