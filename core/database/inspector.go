package database

import (
	"fmt"
	"strings"

	"item-bias/core/utils"

	"gorm.io/gorm"
)

// Column is one column of a table as reported by the database.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// TableColumns retrieves the column definitions of table, lowercased.
// A missing table yields no columns on sqlite and an error on mysql.
func TableColumns(db *gorm.DB, table string) ([]Column, error) {
	query := fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)
	nameKey, typeKey, nullKey := "Field", "Type", "Null"
	if db.Dialector.Name() == DriverSQLite {
		query = fmt.Sprintf("PRAGMA table_info('%s')", table)
		nameKey, typeKey, nullKey = "name", "type", "notnull"
	}

	var rows []map[string]any
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	columns := make([]Column, 0, len(rows))
	for _, r := range rows {
		nullable := utils.ToBool(r[nullKey])
		if nullKey == "notnull" {
			nullable = !nullable
		}
		columns = append(columns, Column{
			Name:     strings.ToLower(utils.ToString(r[nameKey])),
			Type:     strings.ToLower(utils.ToString(r[typeKey])),
			Nullable: nullable,
		})
	}
	return columns, nil
}

// MissingColumns returns the names in want that table lacks, in want order.
func MissingColumns(db *gorm.DB, table string, want []string) ([]string, error) {
	columns, err := TableColumns(db, table)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Name] = true
	}
	var missing []string
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
