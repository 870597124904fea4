package repositories

import "testing"

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"from zero", 10, 0, 100},
		{"both zero", 0, 0, 0},
		{"to zero", 0, 40, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := changePercent(tt.current, tt.previous); got != tt.want {
				t.Errorf("changePercent(%d, %d) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestAgeBucket(t *testing.T) {
	tests := []struct {
		age  *int
		want string
	}{
		{nil, "Unknown"},
		{intPtr(0), "0-17"},
		{intPtr(17), "0-17"},
		{intPtr(18), "18-34"},
		{intPtr(34), "18-34"},
		{intPtr(35), "35-49"},
		{intPtr(49), "35-49"},
		{intPtr(50), "50-64"},
		{intPtr(64), "50-64"},
		{intPtr(65), "65+"},
		{intPtr(90), "65+"},
	}
	for _, tt := range tests {
		if got := AgeBucket(tt.age); got != tt.want {
			t.Errorf("AgeBucket(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}
