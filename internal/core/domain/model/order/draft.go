package order

// LineDraft is one requested line as submitted, before catalog completion.
type LineDraft struct {
	CatalogItemID string
	DisplayName   string
	Unit          string
	Quantity      int
}

// Draft is the submission an order is created from.
type Draft struct {
	Details
	Lines []LineDraft
}
