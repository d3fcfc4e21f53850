// Package pagination translates page/count requests into offset/limit and
// validates the requested page against the total row count.
package pagination

import (
	"strconv"

	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
)

const (
	DefaultPage  = 1
	DefaultCount = 10
	MaxCount     = 100
)

// Request is a 1-based page of count rows
type Request struct {
	Page  int
	Count int
}

// Parse builds a Request from raw query values, applying defaults for empty values
func Parse(page, count string) (Request, error) {
	req := Request{Page: DefaultPage, Count: DefaultCount}
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			return req, apperror.Validation("page", "page: must be an integer")
		}
		req.Page = p
	}
	if count != "" {
		c, err := strconv.Atoi(count)
		if err != nil {
			return req, apperror.Validation("count", "count: must be an integer")
		}
		req.Count = c
	}
	return req, req.Validate()
}

func (r Request) Validate() error {
	if r.Page < 1 {
		return apperror.Validation("page", "page: must not be less than 1")
	}
	if r.Count < 1 {
		return apperror.Validation("count", "count: must not be less than 1")
	}
	if r.Count > MaxCount {
		return apperror.Validation("count", "count: must not be greater than "+strconv.Itoa(MaxCount))
	}
	return nil
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Count
}

func (r Request) Limit() int {
	return r.Count
}

// TotalPages is ceil(total / count)
func TotalPages(total, count int) int {
	if count <= 0 || total <= 0 {
		return 0
	}
	return (total + count - 1) / count
}

// Check fails with not found when the page lies past the last page of a non-empty result
func (r Request) Check(total int) error {
	if total > 0 && r.Page > TotalPages(total, r.Count) {
		return apperror.NotFound(constants.MsgPageNotFound)
	}
	return nil
}
