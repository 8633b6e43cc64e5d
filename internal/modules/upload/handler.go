package upload

import (
	"fmt"
	"math/rand"
	"mime"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

const defaultFolder = "files"

type Handler struct{ store Store }

func NewHandler(store Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

// POST /upload
//
// Multipart form with a "file" part and an optional "folder" field that
// namespaces the object key, e.g. covers or headshots.
func (h *Handler) upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil || header.Size == 0 {
		response.BadRequest(c, "file is required")
		return
	}

	folder := sanitizeFolder(c.PostForm("folder"))
	key := objectKey(folder, header.Filename)

	src, err := header.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()

	url, err := h.store.Put(c.Request.Context(), key, contentTypeOf(header.Filename, header.Header.Get("Content-Type")), src)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"url":      url,
		"pathname": key,
	})
}

// objectKey builds a collision-resistant key from the upload time and a
// short random suffix, keeping the original extension.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, ext)
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return defaultFolder
	}
	var b strings.Builder
	for _, ch := range folder {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '-' || ch == '_':
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return defaultFolder
	}
	return b.String()
}

func contentTypeOf(filename, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
