package sqlinline

const QAppendLedgerEntry = `--sql 3fe399ee-9ffb-40d9-902f-1b951e589a18
insert into ledger(event_type, details)
values ($1::text, $2::jsonb);
`

const QListLedgerByProject = `--sql 07afac2d-2733-4010-aee1-b8649381d910
select id, event_type, details, created_at
from ledger
where details->>'project_id' = $1::text
   or details->>'milestone_id' in (
        select id::text from milestones where project_id = $1::uuid
   )
order by created_at desc
limit $2::int;
`
