package middleware

import (
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/internal/identity"
)

const name string = "github.com/aquaria-id/contest-api/cmd/server/internal/middleware"

var tracer = otel.Tracer(name)

type Handler struct {
	DB       *gorm.DB
	Identity *identity.Service
}
