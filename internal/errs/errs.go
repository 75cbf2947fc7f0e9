// Package errs defines the error shapes the API returns to its clients.
//
// Its purpose is to turn failures from any layer (validation, missing
// records, duplicate keys, storage errors) into one consistent JSON body
// so the dashboard always receives meaningful, actionable messages.
package errs
