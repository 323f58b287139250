package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/envelope"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	entityTypesPath = "/api/entity-types"
	entitiesPath    = "/api/entities"
	versionPath     = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListEntityTypes implements [ServerAdapter]. GET /api/entity-types.
func (h *httpServerAdapter) ListEntityTypes(ctx context.Context) ([]models.EntityType, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(entityTypesPath)
	if err != nil {
		return nil, fmt.Errorf("list entity types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeCollection[models.EntityType](resp.Body(), h.logger, "httpServerAdapter.ListEntityTypes"), nil
}

// CreateEntityType implements [ServerAdapter]. POST /api/entity-types with
// a JSON body.
func (h *httpServerAdapter) CreateEntityType(ctx context.Context, payload models.EntityTypePayload) (models.EntityType, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(entityTypesPath)
	if err != nil {
		return models.EntityType{}, fmt.Errorf("create entity type request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityType{}, err
	}

	return decodeObject[models.EntityType](resp.Body(), "create entity type")
}

// UpdateEntityType implements [ServerAdapter]. PUT /api/entity-types/{id}.
func (h *httpServerAdapter) UpdateEntityType(ctx context.Context, id string, payload models.EntityTypePayload) (models.EntityType, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(payload).
		Put(entityTypesPath + "/{id}")
	if err != nil {
		return models.EntityType{}, fmt.Errorf("update entity type request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityType{}, err
	}

	return decodeObject[models.EntityType](resp.Body(), "update entity type")
}

// DeleteEntityType implements [ServerAdapter]. DELETE /api/entity-types/{id}.
func (h *httpServerAdapter) DeleteEntityType(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(entityTypesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete entity type request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListEntities implements [ServerAdapter]. GET /api/entities?type_id=.
func (h *httpServerAdapter) ListEntities(ctx context.Context, typeID string) ([]models.Entity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam(envelope.FieldTypeID, typeID).
		Get(entitiesPath)
	if err != nil {
		return nil, fmt.Errorf("list entities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeCollection[models.Entity](resp.Body(), h.logger, "httpServerAdapter.ListEntities"), nil
}

// CreateEntity implements [ServerAdapter]. POST /api/entities as
// multipart/form-data.
func (h *httpServerAdapter) CreateEntity(ctx context.Context, env envelope.Envelope) (models.Entity, error) {
	resp, err := h.multipartRequest(ctx, env).
		Post(entitiesPath)
	if err != nil {
		return models.Entity{}, fmt.Errorf("create entity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entity{}, err
	}

	return decodeObject[models.Entity](resp.Body(), "create entity")
}

// UpdateEntity implements [ServerAdapter]. PUT /api/entities/{id} as
// multipart/form-data.
func (h *httpServerAdapter) UpdateEntity(ctx context.Context, id string, env envelope.Envelope) (models.Entity, error) {
	resp, err := h.multipartRequest(ctx, env).
		SetPathParam("id", id).
		Put(entitiesPath + "/{id}")
	if err != nil {
		return models.Entity{}, fmt.Errorf("update entity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entity{}, err
	}

	return decodeObject[models.Entity](resp.Body(), "update entity")
}

// DeleteEntity implements [ServerAdapter]. DELETE /api/entities/{id}.
func (h *httpServerAdapter) DeleteEntity(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(entitiesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete entity request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// multipartRequest lays env out as a multipart form, one field per part in
// envelope order. Text parts carry no file name so the store reads them as
// form values; blob parts keep their file name and content type.
func (h *httpServerAdapter) multipartRequest(ctx context.Context, env envelope.Envelope) *resty.Request {
	req := h.client.R().SetContext(ctx)

	for _, part := range env.Parts {
		if part.IsBlob() {
			req.SetMultipartField(part.Name, part.Blob.FileName, part.Blob.ContentType, bytes.NewReader(part.Blob.Data))
			continue
		}
		req.SetMultipartField(part.Name, "", "", strings.NewReader(part.Text))
	}

	return req
}

// decodeObject decodes a single-object response. An empty body decodes to
// the zero value.
func decodeObject[T any](body []byte, op string) (T, error) {
	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", op, err)
	}
	return out, nil
}

// decodeCollection normalises the two listing shapes the store may return.
// Anything else is logged and treated as an empty collection.
func decodeCollection[T any](body []byte, log *logger.Logger, caller string) []T {
	trimmed := bytes.TrimSpace(body)

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err == nil {
			return items
		}
	} else if bytes.HasPrefix(trimmed, []byte("{")) {
		var wrapped models.ListResponse[T]
		if err := json.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Data != nil {
			return wrapped.Data
		}
	}

	log.Warn().
		Str("func", caller).
		Int("body_size", len(body)).
		Msg("unexpected listing shape, treating as empty")

	return []T{}
}
