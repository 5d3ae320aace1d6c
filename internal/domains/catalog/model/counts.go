package model

// IndexTemplate renders the catalog home page.
const IndexTemplate = "index.html"

// Counts are the record totals shown on the catalog home page.
type Counts struct {
	Books              int
	BookInstances      int
	AvailableInstances int
	Authors            int
	Genres             int
}

type IndexView struct {
	Title  string
	Counts Counts
}
