package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAmountFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount Amount
		want   float64
		wantOK bool
	}{
		{name: "integer", amount: "4", want: 4, wantOK: true},
		{name: "decimal with spaces", amount: " 2.5 ", want: 2.5, wantOK: true},
		{name: "zero", amount: "0", want: 0, wantOK: true},
		{name: "empty", amount: "", wantOK: false},
		{name: "text", amount: "a pinch", wantOK: false},
		{name: "NaN", amount: "NaN", wantOK: false},
		{name: "infinity", amount: "Inf", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.amount.Float()
			if ok != tt.wantOK {
				t.Fatalf("Float() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAmountFloatOr(t *testing.T) {
	if got := Amount("x").FloatOr(1); got != 1 {
		t.Errorf("FloatOr fallback = %v, want 1", got)
	}
	if got := Amount("3").FloatOr(1); got != 3 {
		t.Errorf("FloatOr = %v, want 3", got)
	}
}

func TestAmountJSON(t *testing.T) {
	t.Run("decodes numbers and strings", func(t *testing.T) {
		var ref struct {
			A Amount `json:"a"`
			B Amount `json:"b"`
			C Amount `json:"c"`
		}
		if err := json.Unmarshal([]byte(`{"a": 2, "b": "3.5", "c": null}`), &ref); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if ref.A != "2" || ref.B != "3.5" || ref.C != "" {
			t.Errorf("got a=%q b=%q c=%q", ref.A, ref.B, ref.C)
		}
	})

	t.Run("rejects booleans", func(t *testing.T) {
		var a Amount
		if err := json.Unmarshal([]byte(`true`), &a); err == nil {
			t.Error("expected error for boolean amount")
		}
	})

	t.Run("encodes valid numbers as numbers", func(t *testing.T) {
		data, err := json.Marshal(RecipeRef{ID: "r1", ReqServing: "2"})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `{"id":"r1","reqServing":2}` {
			t.Errorf("Marshal = %s", data)
		}
	})

	t.Run("keeps invalid input as text", func(t *testing.T) {
		data, err := json.Marshal(Amount("lots"))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `"lots"` {
			t.Errorf("Marshal = %s", data)
		}
	})

	t.Run("omits empty serving", func(t *testing.T) {
		data, err := json.Marshal(Recipe{ID: "r1", Text: "Soup"})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != `{"id":"r1","text":"Soup"}` {
			t.Errorf("Marshal = %s", data)
		}
	})
}
