package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"

	"github.com/markaz/backend/core"
)

// translator is used by the error handler to translate validation errors.
var translator ut.Translator

const actorCtxKey = "actor"

// Actor headers. Authentication and role resolution happen upstream (the
// gateway authenticates the session and injects the resolved identity); this
// service trusts the headers the same way the teacher directory is trusted.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorName = "X-Actor-Name"
	HeaderActorRole = "X-Actor-Role"
)

var errMissingActor = echo.NewHTTPError(http.StatusUnauthorized, "missing actor identity")

// actorMiddleware extracts the acting staff member from the request headers
// set by the upstream auth collaborator.
func actorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			actor := core.Actor{
				ID:   req.Header.Get(HeaderActorID),
				Name: req.Header.Get(HeaderActorName),
				Role: req.Header.Get(HeaderActorRole),
			}
			if actor.ID == "" || actor.Role == "" {
				return errMissingActor
			}
			ctx.Set(actorCtxKey, actor)
			return next(ctx)
		}
	}
}

func getContextActor(ctx echo.Context) (core.Actor, error) {
	if actor, ok := ctx.Get(actorCtxKey).(core.Actor); ok {
		return actor, nil
	}
	return core.Actor{}, errMissingActor
}
