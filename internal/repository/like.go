package repository

import "strings"

// likeEscape is the ESCAPE character of substring filters. Backslash would
// need different quoting on MySQL and PostgreSQL.
const likeEscape = "!"

const containsClause = " LIKE ? ESCAPE '" + likeEscape + "'"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// containsPattern builds a case-insensitive LIKE argument that matches text
// literally, wildcards included.
func containsPattern(text string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(text)) + "%"
}
