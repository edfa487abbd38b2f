package sqlinline

const QInsertProject = `--sql 9820fa4d-28b9-49f5-90a5-714eabb135d9
insert into projects(id, ngo_id, title, description, funding_goal)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::bigint)
returning funds_raised, created_at, updated_at;
`

const QGetProject = `--sql 0f08b366-6f4a-48ea-8cae-9ee0773f2010
select id, ngo_id, title, description, funding_goal, funds_raised, created_at, updated_at
from projects
where id = $1::uuid;
`

const QListProjects = `--sql b6701229-c91d-4eda-aef6-24d2c670d116
select id, ngo_id, title, description, funding_goal, funds_raised, created_at, updated_at
from projects
order by created_at desc
limit $1::int;
`

const QAddProjectFunds = `--sql b1ea4e52-76b3-49d0-921e-6002cd596c26
update projects
set funds_raised = funds_raised + $2::bigint, updated_at = now()
where id = $1::uuid;
`
