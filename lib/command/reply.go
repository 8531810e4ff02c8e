package command

// ReplyTag identifies which payload field of a Reply is meaningful.
// Double is included alongside the more familiar Null/Error/String/
// List/UInt/Int/Bool set because ZSCORE's result is a floating-point
// score, not an integer.
type ReplyTag uint8

const (
	ReplyNull ReplyTag = iota
	ReplyError
	ReplyString
	ReplyList
	ReplyUInt
	ReplyInt
	ReplyBool
	ReplyDouble
)

// Byte-exact error messages. Executors must use these constants rather
// than ad-hoc fmt.Sprintf text so the wire contract stays exact.
const (
	ErrDatabaseClosed = "ERR database is closed"
	ErrWrongArguments = "ERR wrong arguments"
	ErrWrongType      = "WRONGTYPE Operation against a key holding the wrong kind of value"
	ErrNoSuchKey      = "ERR no such key"
	ErrUnknownCommand = "ERR unknown command"
)

// Reply is the result of executing a Request. Ok is false only for
// ReplyError; every other tag implies Ok is true. For List replies the
// reply owns a freshly built slice, detached from any slice- or
// list-backed value still held by the store.
type Reply struct {
	Ok   bool
	Tag  ReplyTag
	Str  string // String payload, and the Error message
	List []string
	UVal uint64
	IVal int64
	BVal bool
	DVal float64
}

// NewNullReply returns Ok Null reply, the result of e.g. GET on a missing
// key.
func NewNullReply() *Reply {
	return &Reply{Ok: true, Tag: ReplyNull}
}

// NewErrorReply returns a failed reply carrying msg, which must be one of
// the literal error strings above (or wrap one via fmt.Errorf-style
// composition at the call site only when the message still begins with
// the required tag token).
func NewErrorReply(msg string) *Reply {
	return &Reply{Ok: false, Tag: ReplyError, Str: msg}
}

// NewStringReply returns an Ok String reply.
func NewStringReply(s string) *Reply {
	return &Reply{Ok: true, Tag: ReplyString, Str: s}
}

// NewListReply returns an Ok List reply. elems is never nil in the
// returned reply, even when empty, so callers can range over it safely.
func NewListReply(elems []string) *Reply {
	if elems == nil {
		elems = []string{}
	}
	return &Reply{Ok: true, Tag: ReplyList, List: elems}
}

// NewUIntReply returns an Ok UInt reply.
func NewUIntReply(v uint64) *Reply {
	return &Reply{Ok: true, Tag: ReplyUInt, UVal: v}
}

// NewIntReply returns an Ok Int reply.
func NewIntReply(v int64) *Reply {
	return &Reply{Ok: true, Tag: ReplyInt, IVal: v}
}

// NewBoolReply returns an Ok Bool reply.
func NewBoolReply(v bool) *Reply {
	return &Reply{Ok: true, Tag: ReplyBool, BVal: v}
}

// NewDoubleReply returns an Ok Double reply.
func NewDoubleReply(v float64) *Reply {
	return &Reply{Ok: true, Tag: ReplyDouble, DVal: v}
}
