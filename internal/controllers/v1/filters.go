package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilter applies substring matching for a text filter. A filter that
// is set to the empty string matches only resources with an empty value.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches the search string against any of the given columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	match := db
	for i, column := range columns {
		condition := db.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search))
		if i == 0 {
			match = condition
		} else {
			match = match.Or(condition)
		}
	}

	return query.Where(match)
}
