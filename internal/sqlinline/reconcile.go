package sqlinline

const QReconcileProjects = `--sql a1e4c768-1390-42ab-847f-995e0013f98d
select p.id, p.title, p.funds_raised,
       coalesce(sum(d.amount), 0),
       count(d.id)
from projects p
left join donations d on d.project_id = p.id
group by p.id, p.title, p.funds_raised
order by p.created_at asc;
`

const QCountDonationLedgerEntries = `--sql ea096ca4-31c9-4ef8-9e06-788236bf9ab3
select count(*)
from ledger
where event_type = 'donation' and details->>'project_id' = $1::text;
`
