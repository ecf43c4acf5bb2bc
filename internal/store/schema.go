package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS period_starts (
    start_date           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_period_starts_date ON period_starts(start_date);
`
