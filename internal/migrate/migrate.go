// internal/migrate/migrate.go
package migrate

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Migrator applies the database schema and row-level security policies.
type Migrator struct {
	DB *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// InitializeSchema creates the application tables.
func (m *Migrator) InitializeSchema() error {
	_, err := m.DB.Exec(`
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	DO $$ BEGIN
		CREATE TYPE requisition_status AS ENUM (
			'draft', 'pending', 'under_review', 'reviewed',
			'approved', 'rejected', 'cancelled',
			'partially_received', 'completed'
		);
	EXCEPTION
		WHEN duplicate_object THEN NULL;
	END $$;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		org_type TEXT NOT NULL DEFAULT 'team',
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organization_members (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE(organization_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		code TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS expense_accounts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		account_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS catalog_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		sku TEXT,
		unit TEXT NOT NULL DEFAULT 'each',
		unit_price_cents BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS requisitions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		project_id UUID REFERENCES projects(id),
		expense_account_id UUID REFERENCES expense_accounts(id),
		submitted_by_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		description TEXT,
		status requisition_status NOT NULL DEFAULT 'draft',
		total_cents BIGINT NOT NULL DEFAULT 0,
		submitted_at TIMESTAMPTZ,
		reviewed_at TIMESTAMPTZ,
		approved_at TIMESTAMPTZ,
		reviewer_id UUID REFERENCES users(id),
		approver_id UUID REFERENCES users(id),
		closed_by_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS requisition_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		requisition_id UUID NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
		catalog_item_id UUID NOT NULL REFERENCES catalog_items(id),
		position INT NOT NULL DEFAULT 0,
		quantity BIGINT NOT NULL,
		unit_price_cents BIGINT NOT NULL,
		total_cents BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS requisition_comments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		requisition_id UUID NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id),
		body TEXT NOT NULL,
		event TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS attachments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		requisition_id UUID NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
		uploaded_by_id UUID NOT NULL REFERENCES users(id),
		file_name TEXT NOT NULL,
		object_key TEXT NOT NULL,
		url TEXT NOT NULL,
		size_bytes BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS requisition_templates (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		created_by_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		title TEXT,
		description TEXT,
		project_id UUID,
		expense_account_id UUID,
		items JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		context JSONB,
		read_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS workflow_audit_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL,
		requisition_id UUID,
		actor_id UUID,
		actor_role TEXT,
		event TEXT NOT NULL,
		from_status TEXT,
		to_status TEXT,
		allowed BOOLEAN NOT NULL,
		context JSONB,
		request_id TEXT,
		ip_address TEXT,
		user_agent TEXT,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_requisitions_org_status ON requisitions(organization_id, status);
	CREATE INDEX IF NOT EXISTS idx_requisitions_submitter ON requisitions(organization_id, submitted_by_id);
	CREATE INDEX IF NOT EXISTS idx_requisition_items_req ON requisition_items(requisition_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(organization_id, user_id, read_at);
	CREATE INDEX IF NOT EXISTS idx_audit_logs_org_time ON workflow_audit_logs(organization_id, timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_members_org_user ON organization_members(organization_id, user_id);
	`)

	return err
}

// rlsTables lists the tables carrying an organization_id column directly.
var rlsTables = []string{
	"organization_members",
	"projects",
	"expense_accounts",
	"catalog_items",
	"requisitions",
	"requisition_templates",
	"notifications",
	"workflow_audit_logs",
}

// EnableRowLevelSecurity turns on RLS for every tenant-scoped table.
// Policies compare organization_id against the app.current_org_id
// session setting; the application sets it per connection. This is a
// second fence behind the repository-level scoping, not a replacement.
func (m *Migrator) EnableRowLevelSecurity() error {
	for _, table := range rlsTables {
		stmts := []string{
			fmt.Sprintf(`ALTER TABLE %s ENABLE ROW LEVEL SECURITY`, table),
			fmt.Sprintf(`DROP POLICY IF EXISTS %s_org_isolation ON %s`, table, table),
			fmt.Sprintf(
				`CREATE POLICY %s_org_isolation ON %s
				USING (organization_id = current_setting('app.current_org_id', true)::uuid)`,
				table, table),
		}
		for _, stmt := range stmts {
			if _, err := m.DB.Exec(stmt); err != nil {
				return fmt.Errorf("enabling RLS on %s: %w", table, err)
			}
		}
	}

	// Child tables reach their organization through requisitions.
	childPolicies := []string{
		`ALTER TABLE requisition_items ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS requisition_items_org_isolation ON requisition_items`,
		`CREATE POLICY requisition_items_org_isolation ON requisition_items
			USING (EXISTS (
				SELECT 1 FROM requisitions r
				WHERE r.id = requisition_items.requisition_id
				  AND r.organization_id = current_setting('app.current_org_id', true)::uuid
			))`,
		`ALTER TABLE requisition_comments ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS requisition_comments_org_isolation ON requisition_comments`,
		`CREATE POLICY requisition_comments_org_isolation ON requisition_comments
			USING (EXISTS (
				SELECT 1 FROM requisitions r
				WHERE r.id = requisition_comments.requisition_id
				  AND r.organization_id = current_setting('app.current_org_id', true)::uuid
			))`,
		`ALTER TABLE attachments ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS attachments_org_isolation ON attachments`,
		`CREATE POLICY attachments_org_isolation ON attachments
			USING (EXISTS (
				SELECT 1 FROM requisitions r
				WHERE r.id = attachments.requisition_id
				  AND r.organization_id = current_setting('app.current_org_id', true)::uuid
			))`,
	}
	for _, stmt := range childPolicies {
		if _, err := m.DB.Exec(stmt); err != nil {
			return fmt.Errorf("enabling RLS on child tables: %w", err)
		}
	}

	return nil
}
