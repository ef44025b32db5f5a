// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing ledgers and handoff payloads and
// when tampering with exported payloads to exercise drift detection. They
// are not intended for production usage.
package testutil
