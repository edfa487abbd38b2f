package sqlinline

const QInsertValidation = `--sql 4cd29c0b-2020-483b-bdc3-abb4e07a245d
insert into validations(id, milestone_id, validator_id, is_valid)
values ($1::uuid, $2::uuid, $3::uuid, $4::boolean)
returning created_at;
`

const QCountPositiveValidations = `--sql 70808c4e-e502-410a-aa6c-59876807ef43
select count(*)
from validations
where milestone_id = $1::uuid and is_valid;
`
