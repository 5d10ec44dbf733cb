package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"employee-portal/pkg/types"
)

// ApplyListParams накладывает на SELECT точные фильтры, сортировку и
// пагинацию из types.Filter. allowedMap отображает имена полей из запроса
// на колонки БД; всё, чего в карте нет, молча пропускается.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	for jsonField, val := range filter.Filter {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{dbCol: val})
	}

	for jsonField, dir := range filter.Sort {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder
}
