package audit

const (
	InsertAuditEntry = `
		INSERT INTO media_audit_log (actor_id, action, media_id)
		VALUES ($1, $2, $3)
	`
	PruneAuditEntries = `
		DELETE FROM media_audit_log
		WHERE created_at < $1
	`
)
