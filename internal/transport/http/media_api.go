package http

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patanova/groomer-api/internal/platform/blob"
	sharederrors "github.com/patanova/groomer-api/internal/shared/errors"
)

// MediaAPI stores uploaded photos for pets, clients, and products.
type MediaAPI struct {
	store blob.Store
}

// NewMediaAPI wires the media handlers over a blob store.
func NewMediaAPI(store blob.Store) *MediaAPI {
	return &MediaAPI{store: store}
}

// Upload handles POST /media. Multipart form with a "file" part and an
// optional "kind" (pets, clients, products) that prefixes the object key.
func (a *MediaAPI) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		sharederrors.DefaultResponder.BadRequest(c, "missing file part")
		return
	}
	kind := c.PostForm("kind")
	switch kind {
	case "pets", "clients", "products":
	case "":
		kind = "media"
	default:
		sharederrors.DefaultResponder.BadRequest(c, fmt.Sprintf("unknown kind %q", kind))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	key := path.Join(kind, uuid.NewString()+strings.ToLower(path.Ext(header.Filename)))
	contentType := header.Header.Get("Content-Type")
	info, err := a.store.Put(c.Request.Context(), key, contentType, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"key":  info.Key,
		"size": info.Size,
		"url":  info.URL,
	})
}

// Download handles GET /media/*key and streams the object.
func (a *MediaAPI) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	info, reader, err := a.store.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, reader, nil)
}

// Delete handles DELETE /media/*key.
func (a *MediaAPI) Delete(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := a.store.Delete(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
