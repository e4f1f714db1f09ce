package domain

type PaginationInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	NextCursor      string `json:"nextCursor,omitempty"`
	PreviousCursor  string `json:"previousCursor,omitempty"`
}

const (
	DefaultListLimit = 25
	MaxListLimit     = 100
)

// ListFilters são os parâmetros comuns das listagens paginadas
type ListFilters struct {
	Limit           int
	After           string
	Before          string
	EffectiveStatus []string
	ParentID        string
}

type ListResult[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}
