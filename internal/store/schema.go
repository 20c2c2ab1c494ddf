package store

// Schema DDL for all eight tables. Statements are idempotent so that
// opening an existing database is a no-op.
const (
	createShips = `CREATE TABLE IF NOT EXISTS ships (
    id TEXT PRIMARY KEY,
    manufacturer TEXT NOT NULL,
    model TEXT NOT NULL,
    nickname TEXT,
    variant TEXT,
    role TEXT,
    is_owned INTEGER DEFAULT 1,
    acquired_at INTEGER,
    acquired_price INTEGER,
    notes TEXT,
    image_path TEXT,
    wiki_url TEXT,
    created_at INTEGER,
    updated_at INTEGER
);`

	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,
    parent_id TEXT,
    name TEXT NOT NULL,
    type TEXT,
    services TEXT,
    notes TEXT,
    coord_x REAL,
    coord_x_unit TEXT,
    coord_y REAL,
    coord_y_unit TEXT,
    coord_z REAL,
    coord_z_unit TEXT,
    first_visited_at INTEGER,
    visit_count INTEGER DEFAULT 0,
    is_favorite INTEGER DEFAULT 0,
    wiki_url TEXT,
    created_at INTEGER,
    updated_at INTEGER
);`

	createJournalEntries = `CREATE TABLE IF NOT EXISTS journal_entries (
    id TEXT PRIMARY KEY,
    timestamp INTEGER NOT NULL,
    title TEXT,
    content TEXT NOT NULL,
    entry_type TEXT,
    mood TEXT,
    location_id TEXT,
    ship_id TEXT,
    tags TEXT,
    is_favorite INTEGER DEFAULT 0,
    created_at INTEGER,
    updated_at INTEGER
);`

	createTransactions = `CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    timestamp INTEGER NOT NULL,
    amount INTEGER NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    location_id TEXT,
    ship_id TEXT,
    journal_entry_id TEXT,
    created_at INTEGER
);`

	createCargoRuns = `CREATE TABLE IF NOT EXISTS cargo_runs (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    completed_at INTEGER,
    commodity TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    buy_price INTEGER NOT NULL,
    sell_price INTEGER,
    profit INTEGER,
    origin_location_id TEXT,
    destination_location_id TEXT,
    ship_id TEXT,
    notes TEXT,
    status TEXT DEFAULT 'in_progress',
    created_at INTEGER
);`

	createMissions = `CREATE TABLE IF NOT EXISTS missions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    mission_type TEXT,
    contractor TEXT,
    reward INTEGER,
    status TEXT DEFAULT 'active',
    accepted_at INTEGER,
    completed_at INTEGER,
    location_id TEXT,
    ship_id TEXT,
    notes TEXT,
    created_at INTEGER
);`

	createScreenshots = `CREATE TABLE IF NOT EXISTS screenshots (
    id TEXT PRIMARY KEY,
    file_path TEXT NOT NULL,
    thumbnail_path TEXT,
    taken_at INTEGER,
    caption TEXT,
    tags TEXT,
    location_id TEXT,
    ship_id TEXT,
    journal_entry_id TEXT,
    is_favorite INTEGER DEFAULT 0,
    created_at INTEGER
);`

	createSessions = `CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    ended_at INTEGER,
    duration_minutes INTEGER,
    starting_balance INTEGER,
    ending_balance INTEGER,
    notes TEXT,
    created_at INTEGER
);`
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createShips,
	createLocations,
	createJournalEntries,
	createTransactions,
	createCargoRuns,
	createMissions,
	createScreenshots,
	createSessions,
}

// columnRepair describes one additive schema repair: if the column is
// absent from the table, it is added with the given type. This tolerates
// databases created by older releases without a migration runner.
type columnRepair struct {
	table   string
	column  string
	coltype string
}

// columnRepairs is the fixed list of (table, column) pairs checked on
// every open.
var columnRepairs = []columnRepair{
	{"ships", "wiki_url", "TEXT"},
	{"locations", "wiki_url", "TEXT"},
	{"locations", "coord_x", "REAL"},
	{"locations", "coord_x_unit", "TEXT"},
	{"locations", "coord_y", "REAL"},
	{"locations", "coord_y_unit", "TEXT"},
	{"locations", "coord_z", "REAL"},
	{"locations", "coord_z_unit", "TEXT"},
}
