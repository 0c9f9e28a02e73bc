package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyInfoCtx        ContextKey = "myInfo"
	OperatorInfoCtx  ContextKey = "operatorInfo"
	WorkCenterCtx    ContextKey = "workCenter"
	WorkOrderCtx     ContextKey = "workOrder"
	ReflowRunCtx     ContextKey = "reflowRun"
)
