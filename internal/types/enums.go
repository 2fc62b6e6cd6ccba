package types

type Grammar string

const (
	GrammarHashicorp Grammar = "hashicorp"
	GrammarNpm       Grammar = "npm"
)

type Direction string

const (
	DirectionHashicorpToNpm Direction = "hashicorp-to-npm"
	DirectionNpmToHashicorp Direction = "npm-to-hashicorp"
)

type ConstraintOp string

const (
	ConstraintOpNone        ConstraintOp = ""
	ConstraintOpEq          ConstraintOp = "="
	ConstraintOpNe          ConstraintOp = "!="
	ConstraintOpGt          ConstraintOp = ">"
	ConstraintOpLt          ConstraintOp = "<"
	ConstraintOpGte         ConstraintOp = ">="
	ConstraintOpLte         ConstraintOp = "<="
	ConstraintOpPessimistic ConstraintOp = "~>"
	ConstraintOpTilde       ConstraintOp = "~"
	ConstraintOpCaret       ConstraintOp = "^"
)
