package repository

const (
	createGenerationQuery = `INSERT INTO generations (user_id, mode, prompt, template_id, input_asset_url, status, progress, settings)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`
	getGenerationByIDQuery = `SELECT generation_id, user_id, mode, prompt, template_id, input_asset_url, status, progress,
					provider_job_id, output_video_url, output_thumbnail_url, error_message, settings, created_at, updated_at
					FROM generations WHERE generation_id = $1`
	updateStartResultQuery = `UPDATE generations SET provider_job_id = $1, status = $2, updated_at = now()
					WHERE generation_id = $3`
	updateFromPollQuery = `UPDATE generations
					SET status = $1,
					    progress = $2,
					    output_video_url = COALESCE(NULLIF($3, ''), output_video_url),
					    output_thumbnail_url = COALESCE(NULLIF($4, ''), output_thumbnail_url),
					    error_message = COALESCE(NULLIF($5, ''), error_message),
					    updated_at = now()
					WHERE generation_id = $6`
	markFailedQuery = `UPDATE generations SET status = 'failed', error_message = $1, updated_at = now()
					WHERE generation_id = $2`
	getTotalGenerationsByUserIDQuery = `SELECT COUNT(generation_id) FROM generations WHERE user_id = $1`
	getGenerationsByUserIDQuery      = `SELECT generation_id, user_id, mode, prompt, template_id, input_asset_url, status, progress,
					provider_job_id, output_video_url, output_thumbnail_url, error_message, settings, created_at, updated_at
					FROM generations WHERE user_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	deleteGenerationQuery = `DELETE FROM generations WHERE generation_id = $1 AND user_id = $2`
)
