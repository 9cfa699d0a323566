package rest

// The panel wraps every resource in an envelope carrying an object type tag
// and the resource attributes, and every collection in a list envelope with
// pagination metadata. The generic types below decode those envelopes once
// so accessors only deal with attribute structs.

// Object is a single-resource envelope.
type Object[T any] struct {
	Object     string `json:"object"`
	Attributes T      `json:"attributes"`
}

// List is a collection envelope.
type List[T any] struct {
	Object string      `json:"object"`
	Data   []Object[T] `json:"data"`
	Meta   Meta        `json:"meta"`
}

// Meta carries collection metadata.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the position of a list response within the full
// collection.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Items unwraps a list envelope into a slice of attribute values.
func Items[T any](list List[T]) []T {
	items := make([]T, 0, len(list.Data))
	for _, obj := range list.Data {
		items = append(items, obj.Attributes)
	}
	return items
}
