package postgres

const (
	queryGetUserByID = `
		SELECT id, username, COALESCE(display_name, ''), COALESCE(avatar_url, ''), is_admin
		FROM users
		WHERE id = $1;
	`

	queryGetChannelBySlug = `
		SELECT id, slug, name, priority, default_can_view, default_can_read, default_can_send
		FROM channels
		WHERE slug = $1;
	`
	queryGetChannelByID = `
		SELECT id, slug, name, priority, default_can_view, default_can_read, default_can_send
		FROM channels
		WHERE id = $1;
	`
	queryListChannels = `
		SELECT id, slug, name, priority, default_can_view, default_can_read, default_can_send
		FROM channels
		ORDER BY priority DESC, id ASC;
	`

	queryGetOverride = `
		SELECT channel_id, user_id, can_view, can_read, can_send, updated_at
		FROM channel_permissions
		WHERE channel_id = $1 AND user_id = $2;
	`

	queryInsertMessage = `
		INSERT INTO messages (channel_id, user_id, content, reply_to_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_deleted, created_at, updated_at;
	`
	queryGetMessage = `
		SELECT id, channel_id, user_id, content, reply_to_id, is_deleted, created_at, updated_at
		FROM messages
		WHERE id = $1;
	`
	queryGetMessageForUpdate = `
		SELECT id, channel_id, user_id, content, reply_to_id, is_deleted, created_at, updated_at
		FROM messages
		WHERE id = $1
		FOR UPDATE;
	`
	queryUpdateMessage = `
		UPDATE messages
		SET content = $2, is_deleted = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`
	queryMessageHistory = `
		SELECT id, channel_id, user_id, content, reply_to_id, is_deleted, created_at, updated_at
		FROM messages
		WHERE channel_id = $1
		  AND (
		    $2::timestamptz IS NULL
		    OR created_at < $2
		    OR (created_at = $2 AND id < $3)
		  )
		ORDER BY created_at DESC, id DESC
		LIMIT $4;
	`

	queryListAccessories = `
		SELECT id, user_id, kind, COALESCE(color, ''), COALESCE(image_url, ''), activated_at
		FROM accessory_grants
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY activated_at DESC, id DESC;
	`
	queryListEmojisForUser = `
		SELECT id, name, image_url, owner_id
		FROM emojis
		WHERE owner_id IS NULL OR owner_id = $1
		ORDER BY name ASC;
	`

	queryUpsertReadMarker = `
		INSERT INTO channel_read_markers (channel_id, user_id, last_message_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (channel_id, user_id) DO UPDATE
		SET last_message_id = GREATEST(channel_read_markers.last_message_id, EXCLUDED.last_message_id),
		    updated_at = EXCLUDED.updated_at;
	`

	queryInsertNotification = `
		INSERT INTO notifications (user_id, title, body, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	queryAddPoints = `
		UPDATE users SET points = points + $2 WHERE id = $1;
	`
	queryInsertPointLog = `
		INSERT INTO point_logs (user_id, delta, reason, ref_id)
		VALUES ($1, $2, $3, $4);
	`
)
