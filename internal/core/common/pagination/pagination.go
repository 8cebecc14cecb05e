package pagination

// Page is a normalized pagination window. Values are always safe to hand to
// the repository: page >= 1, 0 < pageSize <= max.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps raw query values. Oversized page sizes are clamped to max,
// never rejected; non-positive or missing values fall back to defaults.
func Normalize(page, pageSize, defaultSize, maxSize int) Page {
	if defaultSize <= 0 {
		defaultSize = 10
	}
	if maxSize <= 0 {
		maxSize = 100
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return Page{Number: page, Size: pageSize}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
