package models

// QtyMetric is the unit label shown next to an ingredient.
// No conversion between metrics is ever performed.
type QtyMetric string

const (
	QtyMetricKg   QtyMetric = "kg"
	QtyMetricUnit QtyMetric = "unit"
)

// Ingredient is an entry of the ingredient catalog.
//
// The catalog is only used for display: a recipe line whose normalized text equals
// a catalog entry's normalized text is shown with that entry's QtyMetric.
type Ingredient struct {
	// ID is the unique identifier for the catalog entry.
	ID string `json:"id"`

	// Text is the ingredient name.
	Text string `json:"text"`

	// QtyMetric is the unit label, "kg" or "unit". Defaults to "kg".
	QtyMetric QtyMetric `json:"qtyMetric"`
}

// GetID returns the catalog entry ID.
func (i Ingredient) GetID() string { return i.ID }

// WithID returns a copy of the entry carrying id.
func (i Ingredient) WithID(id string) Ingredient {
	i.ID = id
	return i
}

// MetricsByName indexes catalog entries by normalized text. Later entries win.
func MetricsByName(catalog []Ingredient) map[string]QtyMetric {
	out := make(map[string]QtyMetric, len(catalog))
	for _, entry := range catalog {
		if name := NormalizeName(entry.Text); name != "" {
			out[name] = entry.QtyMetric
		}
	}
	return out
}
