package models

// SortInfo mirrors the sort block of a Spring Data page.
type SortInfo struct {
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
	Empty    bool `json:"empty"`
}

type Pageable struct {
	PageNumber int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	Sort       SortInfo `json:"sort"`
	Offset     int64    `json:"offset"`
	Paged      bool     `json:"paged"`
	Unpaged    bool     `json:"unpaged"`
}

// Page is one page of a paginated collection response.
type Page[T any] struct {
	Content          []T      `json:"content"`
	Pageable         Pageable `json:"pageable"`
	TotalPages       int      `json:"totalPages"`
	TotalElements    int64    `json:"totalElements"`
	Last             bool     `json:"last"`
	Size             int      `json:"size"`
	Number           int      `json:"number"`
	Sort             SortInfo `json:"sort"`
	NumberOfElements int      `json:"numberOfElements"`
	First            bool     `json:"first"`
	Empty            bool     `json:"empty"`
}

// PageRequest carries the list query parameters. Zero values are replaced
// by the defaults (page 0, size 20, sort "id", direction "ASC").
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

const (
	DefaultPageSize  = 20
	DefaultSort      = "id"
	DefaultDirection = "ASC"
)

// WithDefaults fills unset fields.
func (p PageRequest) WithDefaults() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Sort == "" {
		p.Sort = DefaultSort
	}
	if p.Direction == "" {
		p.Direction = DefaultDirection
	}
	return p
}
