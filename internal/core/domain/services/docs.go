// Package services contains domain services for order tracking: the
// observer registry (OrderSubject) that fans out synchronous notifications
// on status changes, the CustomerObserver that turns status changes into
// customer-facing messages, and the tracking event builder that derives the
// serializable progress snapshot sent to live subscribers.
//
// Services here are pure domain logic: they perform no I/O and depend only
// on the domain model. Persistence and broadcasting are orchestrated by the
// application layer.
package services
