// Package sqlxrepos implements the domain repositories on PostgreSQL
// through sqlx. Nested value objects (notes, payment accounts, payout
// details, the saved monthly report) live in jsonb columns.
package sqlxrepos

import "strconv"

func dollar(n int) string {
	return "$" + strconv.Itoa(n)
}
