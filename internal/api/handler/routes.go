package handler

import (
	"net/http"

	"github.com/ivstraffic/batch-operations-api/internal/api/handler/router"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/authenticating"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/batching"
	"github.com/ivstraffic/batch-operations-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BatchOperations(service batching.BatchService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/batch-operations",
			Method:      http.MethodPost,
			Handler:     CreateBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/batch-operations",
			Method:      http.MethodGet,
			Handler:     ListBatchOperations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/batch-operations/:id",
			Method:      http.MethodGet,
			Handler:     GetBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/batch-operations/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/batch-operations/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/batch-operations/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/batch-operations/:id/execute",
			Method:      http.MethodPost,
			Handler:     ExecuteBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/batch-operations/:id/rollback",
			Method:      http.MethodPost,
			Handler:     RollbackBatchOperation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
