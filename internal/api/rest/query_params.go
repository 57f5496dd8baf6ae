package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collection-launch/internal/api/shared/constants"
	"github.com/feral-file/ff-collection-launch/internal/api/shared/executor"
	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// GetEventsQueryParams holds query parameters for GET /events
type GetEventsQueryParams struct {
	// Filters
	Types   []string `form:"type"`
	Actor   string   `form:"actor"`
	TokenID *uint64  `form:"token_id"`

	// Pagination
	AfterCursor *int64 `form:"after_cursor"`
	Limit       int    `form:"limit,default=50"`
	Offset      uint64 `form:"offset,default=0"`
}

// ParseGetEventsQuery parses query parameters for GET /events
func ParseGetEventsQuery(c *gin.Context) (*GetEventsQueryParams, error) {
	var params GetEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Accept both ?type=a&type=b and ?type=a,b
	var types []string
	for _, t := range params.Types {
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				types = append(types, part)
			}
		}
	}
	params.Types = types

	// Cap limit
	if params.Limit > constants.MAX_EVENTS_PAGE_SIZE {
		params.Limit = constants.MAX_EVENTS_PAGE_SIZE
	}

	return &params, nil
}

// Filter converts the query parameters to an executor filter
func (p *GetEventsQueryParams) Filter() (executor.EventFilter, error) {
	filter := executor.EventFilter{
		Types:       p.Types,
		AfterCursor: p.AfterCursor,
		Limit:       p.Limit,
		Offset:      p.Offset,
	}

	if p.Limit < 0 {
		return filter, fmt.Errorf("limit must not be negative")
	}
	if p.Actor != "" {
		actor, err := domain.ParseAddress(p.Actor)
		if err != nil {
			return filter, fmt.Errorf("actor: %w", err)
		}
		filter.Actor = &actor
	}
	if p.TokenID != nil {
		id := domain.TokenID(*p.TokenID)
		filter.TokenID = &id
	}

	return filter, nil
}

// parseTokenIDParam parses the :id path parameter
func parseTokenIDParam(c *gin.Context) (domain.TokenID, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q", c.Param("id"))
	}
	return domain.TokenID(id), nil
}

// parseAddressParam parses the :address path parameter
func parseAddressParam(c *gin.Context) (common.Address, error) {
	return domain.ParseAddress(c.Param("address"))
}
