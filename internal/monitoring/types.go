package monitoring

// Field identifies one of the editable sell order inputs
type Field string

const (
	FieldDepositAmount    Field = "deposit_amount"
	FieldProfitPercentage Field = "profit_percentage"
	FieldBtcOutputAmount  Field = "btc_output_amount"
)

type EditOutcome string

const (
	EditAccepted EditOutcome = "accepted"
	EditRejected EditOutcome = "rejected"
)

type RecomputeStatus string

const (
	RecomputeComputed       RecomputeStatus = "computed"
	RecomputeSkippedNoPrice RecomputeStatus = "skipped_no_price"
)

const (
	AddressCheckValid = "valid"

	DepositParamsBuilt  = "built"
	DepositParamsFailed = "failed"
)
