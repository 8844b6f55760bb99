package settings

const (
	SelectAllSettings = `
		SELECT key, value
		FROM media_settings
	`
	UpsertSetting = `
		INSERT INTO media_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`
)
