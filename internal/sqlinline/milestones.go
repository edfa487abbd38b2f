package sqlinline

const QInsertMilestone = `--sql 03914f92-e01d-4b72-a520-de8d694840f8
insert into milestones(id, project_id, title, amount_needed)
values ($1::uuid, $2::uuid, $3::text, $4::bigint)
returning status, created_at;
`

const QGetMilestone = `--sql 6cb08e08-0c29-4b21-b59e-09e1961240c0
select id, project_id, title, amount_needed, status, completed_at, created_at
from milestones
where id = $1::uuid;
`

const QListMilestonesByProject = `--sql eb16fcf5-aa93-410c-b913-17ac76548dc7
select id, project_id, title, amount_needed, status, completed_at, created_at
from milestones
where project_id = $1::uuid
order by created_at asc;
`

const QCompleteMilestone = `--sql cde161ff-490f-4c0f-bc1f-075b3552ed12
update milestones
set status = 'completed', completed_at = now()
where id = $1::uuid and status <> 'completed';
`
