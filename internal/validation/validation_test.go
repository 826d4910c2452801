package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/recipelist/internal/models"
)

type ingredientInput struct {
	Text      string        `json:"text" validate:"notblank,max=100"`
	Quantity  models.Amount `json:"quantity" validate:"amount=nonnegative"`
	Serving   models.Amount `json:"serving" validate:"omitempty,amount=positive"`
	QtyMetric string        `json:"qtyMetric" validate:"omitempty,oneof=kg unit"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      ingredientInput
		wantFields []FieldError
	}{
		{
			name:  "valid input",
			input: ingredientInput{Text: "flour", Quantity: "0.5", Serving: "4", QtyMetric: "kg"},
		},
		{
			name:  "zero quantity is allowed",
			input: ingredientInput{Text: "salt", Quantity: "0"},
		},
		{
			name:       "blank name",
			input:      ingredientInput{Text: "   ", Quantity: "1"},
			wantFields: []FieldError{{Field: "text", Message: "is required"}},
		},
		{
			name:       "non-numeric quantity",
			input:      ingredientInput{Text: "egg", Quantity: "two"},
			wantFields: []FieldError{{Field: "quantity", Message: "must be a number of at least 0"}},
		},
		{
			name:       "missing quantity",
			input:      ingredientInput{Text: "egg"},
			wantFields: []FieldError{{Field: "quantity", Message: "must be a number of at least 0"}},
		},
		{
			name:       "negative quantity",
			input:      ingredientInput{Text: "egg", Quantity: "-1"},
			wantFields: []FieldError{{Field: "quantity", Message: "must be a number of at least 0"}},
		},
		{
			name:       "zero serving",
			input:      ingredientInput{Text: "egg", Quantity: "1", Serving: "0"},
			wantFields: []FieldError{{Field: "serving", Message: "must be a number greater than 0"}},
		},
		{
			name:       "unknown metric",
			input:      ingredientInput{Text: "egg", Quantity: "1", QtyMetric: "litre"},
			wantFields: []FieldError{{Field: "qtyMetric", Message: "must be one of: kg unit"}},
		},
		{
			name:  "several failures",
			input: ingredientInput{Text: "", Quantity: "NaN", Serving: "-2"},
			wantFields: []FieldError{
				{Field: "text", Message: "is required"},
				{Field: "quantity", Message: "must be a number of at least 0"},
				{Field: "serving", Message: "must be a number greater than 0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if diff := cmp.Diff(tt.wantFields, verr.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestField(t *testing.T) {
	err := Field("id", "is already on the list")
	if err.Error() != "invalid input: id is already on the list" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
