package sqlinline

const QInsertDonation = `--sql bc48c485-5bed-49c9-9daf-01b962ea485f
insert into donations(id, donor_id, project_id, amount, donor_country)
values ($1::uuid, $2::uuid, $3::uuid, $4::bigint, $5::text)
returning created_at;
`

const QListDonationsByProject = `--sql eeeddbcd-4424-431e-b7c7-155adf47c41c
select id, donor_id, project_id, amount, donor_country, created_at
from donations
where project_id = $1::uuid
order by created_at desc
limit $2::int;
`
