package sqlinline

const QInsertProof = `--sql 0f8fab75-546b-4119-9900-94efea7310b4
insert into proofs(id, milestone_id, url, geotag)
values ($1::uuid, $2::uuid, $3::text, nullif($4::text, ''))
returning created_at;
`

const QListProofsByMilestone = `--sql 245c419c-5926-46da-9bc3-55360b352dc7
select id, milestone_id, url, geotag, created_at
from proofs
where milestone_id = $1::uuid
order by created_at asc;
`
