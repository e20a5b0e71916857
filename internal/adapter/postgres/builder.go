package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder configured for PostgreSQL
// ($1, $2, ... placeholders). Repositories build every query from it.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
