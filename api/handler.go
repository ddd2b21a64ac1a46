// Package api exposes the storage engine over HTTP. Values travel as plain
// JSON bodies; namespaces and keys live in the URL, so clients never build
// backend keys themselves.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/codec"
	"github.com/prefstore/prefstore/engine"
	"github.com/prefstore/prefstore/keyspace"
)

// Engine is the storage surface the handlers need.
type Engine interface {
	Set(ctx context.Context, namespace, key string, value any) error
	Get(ctx context.Context, namespace, key string) (any, error)
	Contains(ctx context.Context, namespace, key string) (bool, error)
	Remove(ctx context.Context, namespace, key string) error
	Keys(ctx context.Context, namespace string) ([]string, error)
	Clear(ctx context.Context, namespace string) error
}

// Handler holds the HTTP handlers for the storage API.
type Handler struct {
	engine Engine
}

// NewHandler creates a Handler over the given engine.
func NewHandler(engine Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Set(c *gin.Context) {
	var value any
	if err := c.ShouldBindJSON(&value); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "body is not valid JSON"})
		return
	}

	if err := h.engine.Set(c.Request.Context(), c.Param("ns"), c.Param("key"), value); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Get(c *gin.Context) {
	value, err := h.engine.Get(c.Request.Context(), c.Param("ns"), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

func (h *Handler) Contains(c *gin.Context) {
	ok, err := h.engine.Contains(c.Request.Context(), c.Param("ns"), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.engine.Remove(c.Request.Context(), c.Param("ns"), c.Param("key")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Keys(c *gin.Context) {
	keys, err := h.engine.Keys(c.Request.Context(), c.Param("ns"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.engine.Clear(c.Request.Context(), c.Param("ns")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps the engine error taxonomy onto HTTP statuses. Partial
// clears include the remaining keys so clients can retry just those.
func writeError(c *gin.Context, err error) {
	var clearErr *engine.ClearError
	switch {
	case errors.As(err, &clearErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":     clearErr.Error(),
			"remaining": clearErr.Keys(),
		})
	case errors.Is(err, backend.ErrKeyNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, keyspace.ErrInvalidKey), errors.Is(err, codec.ErrUnsupportedValue):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, codec.ErrMalformedData):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
