// Package order provides domain entities and business logic for order
// tracking. It implements the Order aggregate root with lifecycle
// management and a linear status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity and lifecycle
//   - Status: A state machine over the fixed stage sequence preparing ->
//     shipped -> outside -> delivered
//
// Key business rules:
//   - Orders must have a valid unique identifier and a customer name
//   - Status advances one stage at a time; delivered is terminal
//   - An unrecognized stored status is recovered as the first stage rather
//     than rejected
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
