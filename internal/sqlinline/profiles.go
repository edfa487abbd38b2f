package sqlinline

const QGetProfile = `--sql 0d787b20-8508-403a-b186-9a145f1beb5a
select id, role, display_name, created_at, updated_at
from profiles
where id = $1::uuid;
`
