package sqlbuilder

import sq "github.com/Masterminds/squirrel"

// PSQL builds statements with PostgreSQL $n placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return PSQL.Select(columns...)
}

func Update(table string) sq.UpdateBuilder {
	return PSQL.Update(table)
}
