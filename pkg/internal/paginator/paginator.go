// Package paginator slices ordered collections into fixed-size pages for
// the rendering layer. It never mutates or copies the underlying items.
package paginator

type Page[T any] struct {
	Items      []T
	Number     int
	PerPage    int
	TotalItems int
	TotalPages int
}

// Paginate returns the 1-based page with the given number. Page numbers out
// of range are clamped to the nearest valid page instead of failing, which
// matches what a pasted-around listing URL should do.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}

	total := (len(items) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}

	if number < 1 {
		number = 1
	} else if number > total {
		number = total
	}

	begin := (number - 1) * perPage
	end := begin + perPage
	if begin > len(items) {
		begin = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[begin:end],
		Number:     number,
		PerPage:    perPage,
		TotalItems: len(items),
		TotalPages: total,
	}
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) PrevNumber() int {
	if p.HasPrev() {
		return p.Number - 1
	}
	return p.Number
}

func (p Page[T]) NextNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}
