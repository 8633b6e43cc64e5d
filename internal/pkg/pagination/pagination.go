package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Query is a validated page request.
type Query struct {
	Page int
	Size int
}

// Offset is the number of rows to skip for this page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// FromContext reads `page` and `size` from the query string, clamping both
// to sane bounds. Anything unparseable falls back to the first default page.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page: atoiDefault(c.Query("page"), 1),
		Size: atoiDefault(c.Query("size"), DefaultSize),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = DefaultSize
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

// Paginate counts the query, fetches one page into dest, and returns the
// page metadata. The db argument carries the model, filters, and ordering.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
