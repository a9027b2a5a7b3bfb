package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/ironlog/internal/models"
)

type catalogEntry struct {
	models.Exercise
	HasStandards bool `json:"has_standards"`
}

func (h *handlers) keyLifts(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	lifts := models.KeyLifts()
	entries := make([]catalogEntry, 0, len(lifts))
	for _, ex := range lifts {
		entries = append(entries, catalogEntry{
			Exercise:     ex,
			HasStandards: h.standards.HasStandards(ex.ID),
		})
	}
	return jsonResource(req, entries)
}

func (h *handlers) exerciseCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := make([]catalogEntry, 0, len(models.Catalog))
	for _, ex := range models.Catalog {
		entries = append(entries, catalogEntry{
			Exercise:     ex,
			HasStandards: h.standards.HasStandards(ex.ID),
		})
	}
	return jsonResource(req, entries)
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
