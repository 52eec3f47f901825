package sqlutil

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains builds a LIKE pattern matching s anywhere in a column. Use it with
// ESCAPE '\' so wildcards typed by a user match literally.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
