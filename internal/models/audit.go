package models

// AuditAction is the kind of mutating action an audit entry records.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditLogin  AuditAction = "LOGIN"
)

// AuditEntry is an immutable record of one mutating action. The audit
// collection keeps entries newest-first by insertion position; this is a
// storage-level invariant, not a sort applied on read.
type AuditEntry struct {
	ID        string      `json:"id"`
	Timestamp DateTime    `json:"timestamp"`
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details"`
	TargetID  string      `json:"targetId,omitempty"`
}
