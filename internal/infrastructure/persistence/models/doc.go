// Package models contains GORM persistence models that map to database tables.
// Domain entities stay free of ORM tags; each model converts to and from its
// aggregate.
//
// Structure:
// - base.go: shared columns (id, timestamps, version, tenant)
// - commission.go: commissions and commission policies
// - settlement.go: settlement batches and sink records
// - approval.go: seller authorizations and catalog items
// - audit.go: transition audit log
// - eventlog.go: inbound event log
// - payment.go: order payment state
package models
