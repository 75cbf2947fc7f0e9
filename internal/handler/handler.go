// Package handler is the first layer after the router.
//
// It binds requests into typed payloads from the model package, validates
// them through the validation package, and calls the service layer. It is
// the boundary between HTTP and the inventory/staff operations.
package handler
