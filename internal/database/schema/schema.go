package schema

// SchemaSQL contains the full database schema initialization script.
// The same DDL is split into goose migrations under migrations/; this single
// script exists for fresh development databases and tests.
const SchemaSQL = `
-- Players. Rows are created by the game backend; the admin API only mutates
-- balances, owned items and the mailbox.
CREATE TABLE IF NOT EXISTS users (
    uid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) NOT NULL,
    email VARCHAR(255),
    total_coins BIGINT NOT NULL DEFAULT 0,
    total_diamonds BIGINT NOT NULL DEFAULT 0,
    owned_items JSONB NOT NULL DEFAULT '[]'::jsonb,
    mailbox JSONB NOT NULL DEFAULT '[]'::jsonb,
    friends JSONB NOT NULL DEFAULT '[]'::jsonb,
    friend_requests JSONB NOT NULL DEFAULT '[]'::jsonb,
    recent_played JSONB NOT NULL DEFAULT '[]'::jsonb,
    selected_dice_style VARCHAR(100),
    selected_token_style VARCHAR(100),
    selected_board_style VARCHAR(100),
    profile_image_url TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Customization items (dice skins, token sets, board skins).
CREATE TABLE IF NOT EXISTS inventory_items (
    item_id VARCHAR(100) PRIMARY KEY,
    item_name VARCHAR(100) NOT NULL,
    item_type VARCHAR(20) NOT NULL CHECK (item_type IN ('dice', 'token', 'board')),
    item_images JSONB NOT NULL DEFAULT '{}'::jsonb,
    item_price INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 7-day login reward calendar. One row per day.
CREATE TABLE IF NOT EXISTS daily_bonus_rewards (
    id BIGSERIAL PRIMARY KEY,
    day_number INTEGER NOT NULL UNIQUE CHECK (day_number BETWEEN 1 AND 7),
    bonus_type VARCHAR(30) NOT NULL CHECK (bonus_type IN
        ('coin', 'diamond', 'token', 'board', 'free_spin', 'free_7_royale_spin')),
    quantity INTEGER NOT NULL DEFAULT 0,
    token_style VARCHAR(100),
    duration_days INTEGER,
    item_image_url TEXT,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Dare prompts.
CREATE TABLE IF NOT EXISTS dares (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    dare_text TEXT NOT NULL,
    category VARCHAR(20) NOT NULL CHECK (category IN ('casual', 'funny', 'love')),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Tournaments with their seeded bracket state.
CREATE TABLE IF NOT EXISTS tournaments (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(200) NOT NULL,
    status VARCHAR(20) NOT NULL CHECK (status IN
        ('upcoming', 'registration', 'in_progress', 'finals', 'completed', 'cancelled')),
    entry_fee INTEGER NOT NULL DEFAULT 0,
    reward_amount INTEGER NOT NULL DEFAULT 0,
    reward_type VARCHAR(20),
    max_players INTEGER NOT NULL DEFAULT 16,
    current_players INTEGER NOT NULL DEFAULT 0,
    registered_players JSONB NOT NULL DEFAULT '[]'::jsonb,
    tournament_starting_time TIMESTAMPTZ NOT NULL,
    banner_url TEXT,
    tournament_state JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Live rooms, created and advanced by the game servers.
CREATE TABLE IF NOT EXISTS game_rooms (
    id BIGSERIAL PRIMARY KEY,
    room_id VARCHAR(100) NOT NULL,
    game_state VARCHAR(20) NOT NULL DEFAULT 'waiting'
        CHECK (game_state IN ('waiting', 'playing', 'finished')),
    current_players INTEGER NOT NULL DEFAULT 0,
    max_players INTEGER NOT NULL DEFAULT 4,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tournament_rooms (
    id BIGSERIAL PRIMARY KEY,
    room_id VARCHAR(100) NOT NULL,
    game_state VARCHAR(20) NOT NULL DEFAULT 'waiting'
        CHECK (game_state IN ('waiting', 'playing', 'finished')),
    current_players INTEGER NOT NULL DEFAULT 0,
    max_players INTEGER NOT NULL DEFAULT 4,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Per-user in-app notifications, fanned out by admin broadcast.
CREATE TABLE IF NOT EXISTS notifications (
    id BIGSERIAL PRIMARY KEY,
    user_id UUID NOT NULL,
    title VARCHAR(200) NOT NULL,
    message TEXT NOT NULL,
    type VARCHAR(30) NOT NULL DEFAULT 'general',
    tournament_id UUID,
    read BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC);

-- Append-only gift audit log.
CREATE TABLE IF NOT EXISTS gift_history (
    id BIGSERIAL PRIMARY KEY,
    admin_id VARCHAR(255) NOT NULL,
    user_id UUID NOT NULL,
    gift_type VARCHAR(20) NOT NULL CHECK (gift_type IN ('item', 'coins', 'diamonds')),
    item_id VARCHAR(100),
    item_name VARCHAR(100),
    amount BIGINT NOT NULL DEFAULT 0,
    message TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Support chat threads and their append-only messages.
CREATE TABLE IF NOT EXISTS admin_chats (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    username VARCHAR(50) NOT NULL,
    status VARCHAR(10) NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'closed')),
    unread_by_admin BOOLEAN NOT NULL DEFAULT FALSE,
    last_message TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS admin_chat_messages (
    id BIGSERIAL PRIMARY KEY,
    chat_id UUID NOT NULL REFERENCES admin_chats(id) ON DELETE CASCADE,
    sender_type VARCHAR(10) NOT NULL CHECK (sender_type IN ('admin', 'user')),
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_thread ON admin_chat_messages (chat_id, created_at ASC);

-- Cross-promoted applications.
CREATE TABLE IF NOT EXISTS promotion_apps (
    id BIGSERIAL PRIMARY KEY,
    app_name VARCHAR(100) NOT NULL,
    description TEXT,
    main_image TEXT,
    store_url TEXT,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    display_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Admin dashboard accounts. The allow-list in config gates login before
-- these hashes are ever consulted.
CREATE TABLE IF NOT EXISTS admin_accounts (
    email VARCHAR(255) PRIMARY KEY,
    password_hash VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
