package readstore

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern builds a substring ILIKE pattern with user wildcards taken literally.
func searchPattern(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: "%" + likeEscaper.Replace(*s) + "%", Valid: true}
}
