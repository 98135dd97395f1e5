package metrics

// Attribute keys shared by the HTTP and scrape instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
)
