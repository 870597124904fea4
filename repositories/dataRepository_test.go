package repositories

import (
	"testing"
	"time"
)

func TestSQLLiteral(t *testing.T) {
	stamp := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, "NULL"},
		{"plain string", "hello", "'hello'"},
		{"quoted string", "O'Brien", "'O''Brien'"},
		{"bytes", []byte("raw"), "'raw'"},
		{"time", stamp, "'2024-06-15T10:30:00Z'"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"integer", int64(42), "42"},
		{"float", 3.5, "3.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqlLiteral(tt.value); got != tt.want {
				t.Errorf("sqlLiteral(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCoreTablesOrdering(t *testing.T) {
	repo := NewDataRepository(nil, t.TempDir())
	tables := repo.CoreTables()

	index := make(map[string]int, len(tables))
	for i, table := range tables {
		index[table] = i
	}

	// Referencing tables must dump after the tables they point at so the
	// script restores cleanly.
	ordered := [][2]string{
		{"patients", "sessions"},
		{"patients", "archived_patients"},
		{"staff", "shift_changes"},
		{"machines", "sessions"},
		{"machines", "preventive_maintenance"},
		{"lab_test_types", "lab_results"},
		{"medical_supplies", "inventory_logs"},
		{"suppliers", "purchase_orders"},
		{"purchase_orders", "purchase_order_items"},
	}
	for _, pair := range ordered {
		parent, ok := index[pair[0]]
		if !ok {
			t.Fatalf("table %q missing from core tables", pair[0])
		}
		child, ok := index[pair[1]]
		if !ok {
			t.Fatalf("table %q missing from core tables", pair[1])
		}
		if parent > child {
			t.Errorf("%q dumps after %q", pair[0], pair[1])
		}
	}

	// The returned slice is a copy, mutating it must not leak back.
	tables[0] = "mutated"
	if repo.CoreTables()[0] == "mutated" {
		t.Error("CoreTables returned the internal slice")
	}
}
