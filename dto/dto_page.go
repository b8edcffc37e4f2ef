package dto

// ListResp wraps a complete, unpaged result.
type ListResp[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewListResp[T any](items []T) ListResp[T] {
	if items == nil {
		items = []T{}
	}
	return ListResp[T]{Items: items, Count: len(items)}
}
