package sqlinline

const QProjectFundsStats = `--sql 1effbd9d-4c26-42c7-bcd1-ef3b08cbdb9a
select p.funding_goal,
       p.funds_raised,
       (select count(*) from donations d where d.project_id = p.id),
       (select count(*) from milestones m where m.project_id = p.id),
       (select count(*) from milestones m where m.project_id = p.id and m.status = 'completed')
from projects p
where p.id = $1::uuid;
`

const QProjectDonationsByCountry = `--sql 0c957615-b856-42ea-be3d-af49f41014a7
select coalesce(nullif(donor_country, ''), 'unknown'), count(*)
from donations
where project_id = $1::uuid
group by 1
order by 2 desc;
`
