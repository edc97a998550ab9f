package domain

// MessageKey identifies a localizable display string. Services return keys;
// presentation code resolves them through the locale bundle.
type MessageKey string

// Keys for deletion-denial reasons and statistics table labels.
const (
	MsgOnlyDeleteOwnAnnotations   MessageKey = "onlydeleteownannotations"
	MsgOnlyDeleteUncommentedPosts MessageKey = "onlydeleteuncommentedposts"
	MsgQuestions                  MessageKey = "questions"
	MsgAnswers                    MessageKey = "answers"
	MsgMyAnswers                  MessageKey = "myanswers"
	MsgReports                    MessageKey = "reports"
)

// Decision is the result of a permission check. When Allowed is false, Reason
// names the user-facing explanation.
type Decision struct {
	Allowed bool
	Reason  MessageKey
}

// Allow returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision with the given reason.
func Deny(reason MessageKey) Decision {
	return Decision{Allowed: false, Reason: reason}
}
