package iotable

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gngrades/pkg/table"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const (
	dataTable    = "gradebook"
	columnsTable = "gradebook_columns"
)

func readSQLite(path string) (table.Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return table.Table{}, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + dataTable)
	if err != nil {
		return table.Table{}, err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return table.Table{}, err
	}
	cols := make([]table.Column, len(names))
	for i, n := range names {
		cols[i] = table.Column{Name: n}
	}

	var cells [][]table.Cell
	for rows.Next() {
		vals := make([]sql.NullString, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return table.Table{}, err
		}
		row := make([]table.Cell, len(names))
		for i, v := range vals {
			if v.Valid {
				row[i] = table.Parse(v.String)
			}
		}
		cells = append(cells, row)
	}
	if err = rows.Err(); err != nil {
		return table.Table{}, err
	}

	res, err := table.New(cols, cells)
	if err != nil {
		return table.Table{}, err
	}
	return withMetadata(db, res)
}

// withMetadata restores roles, categories, maximum points and the key of
// columns. Databases without the metadata table are returned unchanged.
func withMetadata(db *sql.DB, t table.Table) (table.Table, error) {
	rows, err := db.Query(
		"SELECT name, role, category, max_points, is_key FROM " + columnsTable,
	)
	if err != nil {
		return t, nil
	}
	defer rows.Close()

	meta := make(map[string]table.Column)
	var key string
	for rows.Next() {
		var col table.Column
		var role int
		var isKey int
		err = rows.Scan(&col.Name, &role, &col.Category, &col.MaxPoints, &isKey)
		if err != nil {
			return table.Table{}, err
		}
		col.Role = table.Role(role)
		meta[col.Name] = col
		if isKey == 1 {
			key = col.Name
		}
	}
	if err = rows.Err(); err != nil {
		return table.Table{}, err
	}

	res, err := t.MapColumns(func(c table.Column) table.Column {
		if m, ok := meta[c.Name]; ok {
			return m
		}
		return c
	})
	if err != nil || key == "" {
		return res, err
	}
	return res.WithKey(key)
}

func writeSQLite(path string, t table.Table) (err error) {
	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	cols := t.Columns()
	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c.Name) + " TEXT"
		marks[i] = "?"
	}

	q := fmt.Sprintf("CREATE TABLE %s (%s)", dataTable, strings.Join(defs, ", "))
	if _, err = tx.Exec(q); err != nil {
		return err
	}
	q = fmt.Sprintf(`CREATE TABLE %s (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  role INTEGER NOT NULL,
  category TEXT NOT NULL,
  max_points REAL NOT NULL,
  is_key INTEGER NOT NULL
)`, columnsTable)
	if _, err = tx.Exec(q); err != nil {
		return err
	}

	q = fmt.Sprintf("INSERT INTO %s VALUES (?, ?, ?, ?, ?, ?)", columnsTable)
	for i, c := range cols {
		var isKey int
		if c.Name == t.Key() {
			isKey = 1
		}
		_, err = tx.Exec(q, i, c.Name, int(c.Role), c.Category, c.MaxPoints, isKey)
		if err != nil {
			return err
		}
	}

	q = fmt.Sprintf("INSERT INTO %s VALUES (%s)",
		dataTable, strings.Join(marks, ", "))
	stmt, err := tx.Prepare(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range t.Len() {
		cells := t.Row(i)
		vals := make([]any, len(cells))
		for j, c := range cells {
			if !c.IsAbsent() {
				vals[j] = c.String()
			}
		}
		if _, err = stmt.Exec(vals...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
