package sqlinline

// SchemaDDL creates the full relational layout. Applied by cmd/migrate; the
// statements are idempotent so re-running the tool is safe.
const SchemaDDL = `
create table if not exists profiles (
    id uuid primary key,
    role text not null check (role in ('ngo', 'donor', 'validator')),
    display_name text not null default '',
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);

create table if not exists projects (
    id uuid primary key,
    ngo_id uuid not null references profiles (id),
    title text not null,
    description text not null default '',
    funding_goal bigint not null check (funding_goal > 0),
    funds_raised bigint not null default 0 check (funds_raised >= 0),
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);

create table if not exists milestones (
    id uuid primary key,
    project_id uuid not null references projects (id),
    title text not null,
    amount_needed bigint not null check (amount_needed > 0),
    status text not null default 'pending' check (status in ('pending', 'completed')),
    completed_at timestamptz,
    created_at timestamptz not null default now()
);

create table if not exists proofs (
    id uuid primary key,
    milestone_id uuid not null references milestones (id),
    url text not null,
    geotag text,
    created_at timestamptz not null default now()
);

create table if not exists validations (
    id uuid primary key,
    milestone_id uuid not null references milestones (id),
    validator_id uuid not null references profiles (id),
    is_valid boolean not null,
    created_at timestamptz not null default now(),
    unique (milestone_id, validator_id)
);

create table if not exists donations (
    id uuid primary key,
    donor_id uuid not null references profiles (id),
    project_id uuid not null references projects (id),
    amount bigint not null check (amount > 0),
    donor_country text not null default '',
    created_at timestamptz not null default now()
);

create table if not exists ledger (
    id uuid primary key default gen_random_uuid(),
    event_type text not null check (event_type in ('donation', 'release')),
    details jsonb not null default '{}'::jsonb,
    created_at timestamptz not null default now()
);

create index if not exists idx_projects_ngo on projects (ngo_id);
create index if not exists idx_milestones_project on milestones (project_id);
create index if not exists idx_proofs_milestone on proofs (milestone_id);
create index if not exists idx_validations_milestone on validations (milestone_id);
create index if not exists idx_donations_project on donations (project_id);
create index if not exists idx_ledger_created on ledger (created_at desc);
`

// DropDDL removes every table. Only cmd/migrate -drop uses it.
const DropDDL = `
drop table if exists ledger;
drop table if exists donations;
drop table if exists validations;
drop table if exists proofs;
drop table if exists milestones;
drop table if exists projects;
drop table if exists profiles;
`
