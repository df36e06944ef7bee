package utils

import "reflect"

// ColumnList returns the db column names of a row struct, read from its
// `db` tags, in declaration order.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		name := tag
		for _, prefix := range prefixes {
			name = prefix + "." + name
		}
		columns = append(columns, name)
	}
	return columns
}
