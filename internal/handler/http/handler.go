package http

import (
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
)

// maxMultipartMemory bounds the part of an entity form kept in memory;
// larger file parts spill to temporary files.
const maxMultipartMemory = 32 << 20

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
