package repositories

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestIsCriticalResultNumeric(t *testing.T) {
	low, high := floatPtr(3.5), floatPtr(5.5)

	tests := []struct {
		name  string
		value string
		low   *float64
		high  *float64
		want  bool
	}{
		{"inside range", "4.2", low, high, false},
		{"on lower bound", "3.5", low, high, false},
		{"on upper bound", "5.5", low, high, false},
		{"below range", "3.1", low, high, true},
		{"above range", "6.8", low, high, true},
		{"padded value", " 6.8 ", low, high, true},
		{"only lower bound", "2.0", low, nil, true},
		{"only upper bound", "9.9", nil, high, true},
		{"no bounds", "9.9", nil, nil, false},
		{"unparseable value", "hemolyzed", low, high, false},
		{"empty value", "", low, high, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCriticalResult("number", tt.value, tt.low, tt.high, "")
			if got != tt.want {
				t.Errorf("IsCriticalResult(number, %q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsCriticalResultText(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		normalText string
		want       bool
	}{
		{"matches normal", "Negative", "Negative", false},
		{"case insensitive match", "NEGATIVE", "negative", false},
		{"padded match", " Negative ", "Negative", false},
		{"deviates from normal", "Positive", "Negative", true},
		{"no reference value", "Positive", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCriticalResult("text", tt.value, nil, nil, tt.normalText)
			if got != tt.want {
				t.Errorf("IsCriticalResult(text, %q, normal %q) = %v, want %v", tt.value, tt.normalText, got, tt.want)
			}
		})
	}
}
