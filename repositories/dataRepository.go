package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// coreTables lists the tables included in a full backup, in dependency order.
var coreTables = []string{
	"users",
	"patients",
	"archived_patients",
	"staff",
	"shift_changes",
	"machines",
	"preventive_maintenance",
	"curative_maintenance",
	"sessions",
	"session_schedules",
	"lab_test_types",
	"lab_results",
	"medical_supplies",
	"inventory_logs",
	"suppliers",
	"purchase_orders",
	"purchase_order_items",
	"app_settings",
	"daily_reports",
	"water_treatment_logs",
}

// BackupInfo describes one backup file on disk.
type BackupInfo struct {
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type DataRepository struct {
	db        *gorm.DB
	backupDir string
}

func NewDataRepository(db *gorm.DB, backupDir string) *DataRepository {
	return &DataRepository{db: db, backupDir: backupDir}
}

// CreateBackup dumps the core tables as SQL INSERT statements into a
// timestamped file under the backup directory and returns its name.
func (r *DataRepository) CreateBackup(ctx context.Context) (string, error) {
	dump, err := r.DumpSQL(ctx, coreTables)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	fileName := fmt.Sprintf("backup_%s.sql", time.Now().Format("20060102_150405"))
	path := filepath.Join(r.backupDir, fileName)
	if err := os.WriteFile(path, []byte(dump), 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return fileName, nil
}

// ListBackups returns the backup files on disk, newest first.
func (r *DataRepository) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	entries, err := os.ReadDir(r.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			FileName:  entry.Name(),
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// DumpSQL renders the given tables as INSERT statements. Unknown table names
// are rejected so the endpoint cannot be pointed at arbitrary tables.
func (r *DataRepository) DumpSQL(ctx context.Context, tables []string) (string, error) {
	allowed := make(map[string]bool, len(coreTables))
	for _, t := range coreTables {
		allowed[t] = true
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("-- NileDialysis export %s\n\n", time.Now().Format(time.RFC3339)))

	for _, table := range tables {
		if !allowed[table] {
			return "", fmt.Errorf("unknown table %q: %w", table, ErrInvalid)
		}

		var rows []map[string]interface{}
		if err := r.db.WithContext(ctx).Table(table).Find(&rows).Error; err != nil {
			return "", fmt.Errorf("failed to read table %s: %w", table, err)
		}

		b.WriteString(fmt.Sprintf("-- %s (%d rows)\n", table, len(rows)))
		for _, row := range rows {
			columns := make([]string, 0, len(row))
			for column := range row {
				columns = append(columns, column)
			}
			sort.Strings(columns)

			values := make([]string, 0, len(columns))
			for _, column := range columns {
				values = append(values, sqlLiteral(row[column]))
			}
			b.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				table, strings.Join(columns, ", "), strings.Join(values, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// CoreTables returns the exportable table names.
func (r *DataRepository) CoreTables() []string {
	tables := make([]string, len(coreTables))
	copy(tables, coreTables)
	return tables
}

// sqlLiteral renders one value as a SQL literal with quotes escaped.
func sqlLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(v), "'", "''") + "'"
	case time.Time:
		return "'" + v.Format(time.RFC3339) + "'"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", v)
	}
}
