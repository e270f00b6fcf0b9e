package ioschema

import "fmt"

// collationSQL returns the statement that makes a varchar column
// compare byte by byte. The second value is false for drivers
// that need no change.
func collationSQL(
	driver string,
	table string,
	column string,
	varchar int,
) (string, bool) {
	switch driver {
	case "postgres":
		template := `ALTER TABLE %s ALTER COLUMN %s ` +
			`TYPE VARCHAR(%d) COLLATE "C"`
		return fmt.Sprintf(template, table, column, varchar), true
	case "mysql":
		template := "ALTER TABLE %s MODIFY %s VARCHAR(%d) " +
			"CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"
		return fmt.Sprintf(template, table, column, varchar), true
	default:
		return "", false
	}
}
