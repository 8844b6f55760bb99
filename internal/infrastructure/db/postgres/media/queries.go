package media

const mediaColumns = `
	id, storage_path,
	original_filename, mime_type, file_size_bytes, width, height,
	uploaded_by, original_uploader_id,
	entity_type, entity_id,
	caption, alt_text, sort_order,
	deleted_at, deleted_by, deletion_reason,
	created_at, updated_at`

const (
	InsertMedia = `
		INSERT INTO media (
			storage_path,
			original_filename, mime_type, file_size_bytes, width, height,
			uploaded_by, original_uploader_id,
			entity_type, entity_id,
			caption, alt_text, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + mediaColumns

	SelectMediaByID = `
		SELECT` + mediaColumns + `
		FROM media
		WHERE id = $1
	`

	SelectMediaForEntity = `
		SELECT` + mediaColumns + `
		FROM media
		WHERE entity_type = $1 AND entity_id = $2 AND deleted_at IS NULL
		ORDER BY sort_order ASC, created_at ASC
	`

	CountMediaForEntity = `
		SELECT count(*)
		FROM media
		WHERE entity_type = $1 AND entity_id = $2 AND deleted_at IS NULL
	`

	UpdateMediaByID = `
		UPDATE media
		SET caption    = COALESCE($2, caption),
		    alt_text   = COALESCE($3, alt_text),
		    sort_order = COALESCE($4, sort_order),
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING` + mediaColumns

	SoftDeleteMediaByID = `
		UPDATE media
		SET deleted_at = now(), deleted_by = $2, deletion_reason = $3, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING` + mediaColumns

	SelectMediaByUser = `
		SELECT` + mediaColumns + `
		FROM media
		WHERE uploaded_by = $1 OR original_uploader_id = $1
		ORDER BY created_at ASC
	`

	SoftDeleteMediaByUser = `
		UPDATE media
		SET deleted_at = now(), deleted_by = $2, deletion_reason = $3,
		    uploaded_by = NULL, updated_at = now()
		WHERE (uploaded_by = $1 OR original_uploader_id = $1) AND deleted_at IS NULL
	`

	SelectActiveStoragePaths = `
		SELECT storage_path
		FROM media
		WHERE deleted_at IS NULL
	`
)
