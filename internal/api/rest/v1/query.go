package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/common"

	"github.com/gin-gonic/gin"
)

// bindPage reads limit, offset, sortBy and sortOrder into page
func bindPage(ctx *gin.Context, page *common.Page) error {
	if limit := ctx.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil {
			return fmt.Errorf("%w: limit must be a number", common.ErrValidation)
		}
		page.Limit = value
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		value, err := strconv.Atoi(offset)
		if err != nil {
			return fmt.Errorf("%w: offset must be a number", common.ErrValidation)
		}
		page.Offset = value
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		page.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		page.SortOrder = sortOrder
	}

	return nil
}

// queryTime parses an optional RFC 3339 query parameter
func queryTime(ctx *gin.Context, name string) (time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", common.ErrValidation, name)
	}
	return parsed, nil
}

// listResponse converts a page of domain values with convert
func listResponse[D any, R any](items []D, total int64, page common.Page, convert func(D) R) stub.ListResponse[R] {
	response := stub.ListResponse[R]{
		Items:  make([]R, 0, len(items)),
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, item := range items {
		response.Items = append(response.Items, convert(item))
	}
	return response
}
