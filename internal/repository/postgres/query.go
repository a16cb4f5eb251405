package postgres

import (
	"fmt"
	"strings"

	"client-service/internal/domain/client"
)

// selectClientsSQL is the shared projection used by get, list, and
// search: one row per client with the complete phone list aggregated
// from the LEFT JOIN. The FILTER clause keeps NULLs from the join out
// of the array for clients without phones.
const selectClientsSQL = `
	SELECT
		c.client_id,
		c.first_name,
		c.last_name,
		c.email,
		c.created_at,
		ARRAY_AGG(p.phone_number ORDER BY p.phone_id) FILTER (WHERE p.phone_number IS NOT NULL) AS phones
	FROM clients c
	LEFT JOIN phones p ON p.client_id = c.client_id
`

const groupClientsSQL = `
	GROUP BY c.client_id, c.first_name, c.last_name, c.email, c.created_at
`

// buildSearchQuery assembles the WHERE clause from the present filter
// fields. Each field matches as a case-insensitive substring; all
// present filters are ANDed. The phone filter goes through an EXISTS
// subquery rather than the joined rows, so the aggregated phone list
// stays complete instead of shrinking to the matching numbers.
// Callers must reject an empty filter before calling.
func buildSearchQuery(filter client.SearchFilter) (string, []any) {
	var conditions []string
	var args []any

	appendCondition := func(column string, value string) {
		args = append(args, "%"+escapeLikePattern(value)+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}

	if filter.FirstName != nil {
		appendCondition("c.first_name", *filter.FirstName)
	}

	if filter.LastName != nil {
		appendCondition("c.last_name", *filter.LastName)
	}

	if filter.Email != nil {
		appendCondition("c.email", *filter.Email)
	}

	if filter.Phone != nil {
		args = append(args, "%"+escapeLikePattern(*filter.Phone)+"%")
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM phones f WHERE f.client_id = c.client_id AND f.phone_number ILIKE $%d)",
			len(args),
		))
	}

	query := selectClientsSQL +
		"	WHERE " + strings.Join(conditions, " AND ") + "\n" +
		groupClientsSQL +
		"	ORDER BY c.client_id"

	return query, args
}

// buildUpdateQuery assembles a sparse UPDATE touching only the present
// fields. $1 is always the client id. Callers must reject an empty
// input before calling.
func buildUpdateQuery(id int64, input client.UpdateClientInput) (string, []any) {
	var assignments []string
	args := []any{id}

	appendAssignment := func(column string, value string) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.FirstName != nil {
		appendAssignment("first_name", *input.FirstName)
	}

	if input.LastName != nil {
		appendAssignment("last_name", *input.LastName)
	}

	if input.Email != nil {
		appendAssignment("email", *input.Email)
	}

	query := "UPDATE clients SET " + strings.Join(assignments, ", ") + " WHERE client_id = $1"

	return query, args
}
