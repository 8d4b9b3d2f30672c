// Command coachctl is the operator CLI: it applies migrations, sets a user's
// billing state by hand and inspects folder access.
//
// Usage:
//
//	coachctl migrate [status]
//	coachctl subscription set --email=coach@example.com --status=ACTIVE
//	coachctl members list --folder=<uuid>
//
// The database DSN comes from --dsn or the DATABASE_DSN environment variable.
package main

func main() {
	Execute()
}
