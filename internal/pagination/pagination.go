package pagination

import (
	"math"

	"gorm.io/gorm"
)

// PageSize is the fixed number of expense rows per page.
const PageSize = 10

// PageRequest holds the page number parsed from the query string.
type PageRequest struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

// Defaults fills in the first page when no page is provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * PageSize
}

// Pages returns the total page count for the given item count.
func Pages(totalItems int64) int {
	return int(math.Ceil(float64(totalItems) / float64(PageSize)))
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(PageSize)
	}
}
