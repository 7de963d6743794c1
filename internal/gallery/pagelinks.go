package gallery

// PageLink is one rendered pagination control: a numbered link or an
// ellipsis placeholder.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Active   bool `json:"active,omitempty"`
}

// PageLinks computes the compressed page-link row: first page, last page and
// a window of up to five consecutive pages around the current one, with an
// ellipsis wherever the window does not abut the ends.
func PageLinks(currentPage, totalPages int) []PageLink {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := currentPage - 2
	if start < 1 {
		start = 1
	}
	end := currentPage + 2
	if end > totalPages {
		end = totalPages
	}

	// Widen toward whichever side has room so five pages show when possible.
	if end-start < 4 && totalPages > 5 {
		if currentPage < totalPages/2 {
			end = start + 4
			if end > totalPages {
				end = totalPages
			}
		} else {
			start = end - 4
			if start < 1 {
				start = 1
			}
		}
	}

	var links []PageLink
	if start > 1 {
		links = append(links, PageLink{Page: 1, Active: currentPage == 1})
		if start > 2 {
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		links = append(links, PageLink{Page: p, Active: p == currentPage})
	}
	if end < totalPages {
		if end < totalPages-1 {
			links = append(links, PageLink{Ellipsis: true})
		}
		links = append(links, PageLink{Page: totalPages, Active: currentPage == totalPages})
	}
	return links
}
