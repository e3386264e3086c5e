/*
main.go - Command-line timeclock for employees

PURPOSE:
  A terminal front end over the same engine the desktop form uses:
  clock in and out of the current pay period, inspect today's record
  and the running totals, and submit the finished period for review.

DATA:
  Settings and the local database live under ~/.timeclock/
  (settings.json and timeclock.db). The submit command talks to the
  approval server configured there.

SEE ALSO:
  - form/controller.go: The engine each command drives
  - cmd/server/main.go: The approval server submit targets
*/
package main

func main() {
	execute()
}
