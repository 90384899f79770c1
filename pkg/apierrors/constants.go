package apierrors

// Envelope message keys.
const (
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidCommentID      = "invalidCommentID"
	MsgInvalidPayload        = "invalidPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgCommentNotFound       = "commentNotFound"
	MsgTaskCreated           = "taskCreated"
	MsgTaskUpdated           = "taskUpdated"
	MsgTaskDeleted           = "taskDeleted"
	MsgCommentCreated        = "commentCreated"
	MsgCommentUpdated        = "commentUpdated"
	MsgCommentDeleted        = "commentDeleted"
	MsgFailListTask          = "failListTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailGetTask           = "failGetTask"
	MsgFailListComment       = "failListComment"
	MsgFailCreateComment     = "failCreateComment"
	MsgFailUpdateComment     = "failUpdateComment"
	MsgFailDeleteComment     = "failDeleteComment"
	MsgFailGetComment        = "failGetComment"
	MsgInvalidCredentials    = "invalidCredentials"
	MsgInvalidToken          = "invalidToken"
	MsgAuthRequired          = "authRequired"
	MsgTooManyRequests       = "tooManyRequests"
	MsgFailIssueToken        = "failIssueToken"
)

// Field-scoped validation message keys.
const (
	FieldMsgRequired               = "fieldRequired"
	FieldMsgTitleTooLong           = "titleTooLong"
	FieldMsgDescriptionTooLong     = "descriptionTooLong"
	FieldMsgTextTooLong            = "textTooLong"
	FieldMsgInvalidStatus          = "invalidStatus"
	FieldMsgInvalidStatusFilter    = "invalidStatusFilter"
	FieldMsgDueDatePast            = "dueDatePast"
	FieldMsgInvalidDateTime        = "invalidDateTime"
	FieldMsgInvalidYearFormat      = "invalidYearFormat"
	FieldMsgInvalidMonthFormat     = "invalidMonthFormat"
	FieldMsgInvalidDayFormat       = "invalidDayFormat"
	FieldMsgMonthRequiresYear      = "monthRequiresYear"
	FieldMsgDayRequiresYearOrMonth = "dayRequiresYearOrMonth"
	FieldMsgInvalidPageFormat      = "invalidPageFormat"
	FieldMsgInvalidTaskRef         = "commentTaskNotFound"
	FieldMsgUserMismatch           = "userMismatch"
)
