package query

const (
	defaultLimit = 10
	maxLimit     = 100
)

type ListParams struct {
	Page  int
	Limit int
}

// Normalize clamps limit to [1, 100] and page to >= 1, with sensible
// defaults for zero values.
func (p ListParams) Normalize() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
